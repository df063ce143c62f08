package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceDailyCommits(t *testing.T) {
	events := []githubEvent{
		pushEvent("2025-03-01T09:00:00Z", 3),
		pushEvent("2025-03-01T18:30:00Z", 2),
		pushEvent("2025-03-02T08:00:00Z", 1),
		{Type: "WatchEvent", CreatedAt: "2025-03-02T10:00:00Z"},
		pushEvent("2025-03-03T12:00:00Z", 0),
	}

	daily := reduceDailyCommits(events)

	assert.Equal(t, 5, daily["2025-03-01"])
	assert.Equal(t, 1, daily["2025-03-02"])
	_, ok := daily["2025-03-03"]
	assert.False(t, ok, "zero-commit push should not create a day entry")
}

func TestGithubFetchEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice/events", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("per_page"), "configured page size reaches the request")
		w.Write([]byte(`[
			{"type":"PushEvent","created_at":"2025-03-01T09:00:00Z","payload":{"commits":[{"sha":"a"},{"sha":"b"}]}},
			{"type":"IssuesEvent","created_at":"2025-03-01T10:00:00Z","payload":{}}
		]`))
	}))
	defer srv.Close()

	f := NewGithubFetcher(srv.URL, "", 30)
	raw, err := f.Fetch(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 2, raw.DailyCommits["2025-03-01"])
	assert.Equal(t, 2, raw.TotalContributions)
}

func TestGithubFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewGithubFetcher(srv.URL, "", 0)
	_, err := f.Fetch(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGithubFetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewGithubFetcher(srv.URL, "", 0)
	_, err := f.Fetch(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestGithubGraphQLTotalOverridesEventSum(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/graphql" {
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.Write([]byte(`{"data":{"user":{"contributionsCollection":{"contributionCalendar":{"totalContributions":812}}}}}`))
			return
		}
		w.Write([]byte(`[{"type":"PushEvent","created_at":"2025-03-01T09:00:00Z","payload":{"commits":[{"sha":"a"}]}}]`))
	}))
	defer srv.Close()

	f := NewGithubFetcher(srv.URL, "tok", 0)
	raw, err := f.Fetch(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 812, raw.TotalContributions)
	assert.Equal(t, 1, raw.DailyCommits["2025-03-01"])
}

func pushEvent(createdAt string, commits int) githubEvent {
	e := githubEvent{Type: "PushEvent", CreatedAt: createdAt}
	for i := 0; i < commits; i++ {
		e.Payload.Commits = append(e.Payload.Commits, struct {
			Sha string `json:"sha"`
		}{Sha: "x"})
	}
	return e
}
