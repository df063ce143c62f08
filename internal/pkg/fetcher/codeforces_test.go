package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountAcceptedProblems(t *testing.T) {
	subs := []cfSubmission{
		cfSub("OK", 1, "A", "Watermelon"),
		cfSub("OK", 1, "A", "Watermelon"), // 重复 AC
		cfSub("WRONG_ANSWER", 1, "B", "Spreadsheets"),
		cfSub("OK", 1, "B", "Spreadsheets"),
		cfSub("TIME_LIMIT_EXCEEDED", 2, "A", "Winner"),
	}
	assert.Equal(t, 2, countAcceptedProblems(subs))
}

func TestCodeforcesFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user.status", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("handle"))
		w.Write([]byte(`{"status":"OK","result":[
			{"verdict":"OK","problem":{"contestId":1,"index":"A","name":"Watermelon"}},
			{"verdict":"OK","problem":{"contestId":1,"index":"A","name":"Watermelon"}},
			{"verdict":"WRONG_ANSWER","problem":{"contestId":2,"index":"B","name":"Other"}}
		]}`))
	}))
	defer srv.Close()

	f := NewCodeforcesFetcher(srv.URL)
	raw, err := f.Fetch(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, raw.Solved)
}

func TestCodeforcesFetchUnknownHandle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":"FAILED","comment":"handle: User with handle ghost not found"}`))
	}))
	defer srv.Close()

	f := NewCodeforcesFetcher(srv.URL)
	_, err := f.Fetch(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestCodeforcesFetchFailedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"FAILED","comment":"temporarily unavailable"}`))
	}))
	defer srv.Close()

	f := NewCodeforcesFetcher(srv.URL)
	_, err := f.Fetch(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func cfSub(verdict string, contestID int, index, name string) cfSubmission {
	var s cfSubmission
	s.Verdict = verdict
	s.Problem.ContestID = contestID
	s.Problem.Index = index
	s.Problem.Name = name
	return s
}
