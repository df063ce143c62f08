package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGfgProfileText(t *testing.T) {
	text := `
		alice
		Institute Rank
		42

		Problems Solved
		137
		Coding Score
		520
	`
	solved, score, found := parseGfgProfileText(text)
	require.True(t, found)
	assert.Equal(t, 137, solved)
	assert.Equal(t, 520, score)
}

func TestParseGfgProfileTextMissingLabels(t *testing.T) {
	_, _, found := parseGfgProfileText("some unrelated page body")
	assert.False(t, found)
}

func TestParseGfgProfileTextThousandsSeparator(t *testing.T) {
	solved, score, found := parseGfgProfileText("Problems Solved\n1,024\nCoding Score\n2,310")
	require.True(t, found)
	assert.Equal(t, 1024, solved)
	assert.Equal(t, 2310, score)
}

func TestGfgFetchStatic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/alice/", r.URL.Path)
		w.Write([]byte(`<html><body>
			<div>Problems Solved</div><div>88</div>
			<div>Coding Score</div><div>301</div>
		</body></html>`))
	}))
	defer srv.Close()

	f := NewGfgFetcher(srv.URL, nil)
	raw, err := f.Fetch(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 88, raw.Solved)
	assert.Equal(t, 301, raw.CodingScore)
}

func TestGfgFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewGfgFetcher(srv.URL, nil)
	_, err := f.Fetch(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGfgFetchLabelsMissingWithoutBrowser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div id="root"></div></body></html>`))
	}))
	defer srv.Close()

	f := NewGfgFetcher(srv.URL, nil)
	_, err := f.Fetch(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
