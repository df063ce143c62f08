package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeetcodeFetch(t *testing.T) {
	// 只在 /graphql 挂接口，BaseURL 传站点根，保证路径由 Fetch 拼出
	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"data":{
			"matchedUser":{"submitStatsGlobal":{"acSubmissionNum":[
				{"difficulty":"All","count":16},
				{"difficulty":"Easy","count":10},
				{"difficulty":"Medium","count":5},
				{"difficulty":"Hard","count":1}
			]}},
			"userContestRanking":{"rating":1500.5,"attendedContestsCount":3}
		}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := NewLeetcodeFetcher(srv.URL)
	raw, err := f.Fetch(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 16, raw.Solved)
	assert.Equal(t, 10, raw.Easy)
	assert.Equal(t, 5, raw.Medium)
	assert.Equal(t, 1, raw.Hard)
	assert.Equal(t, 1500, raw.ContestRating)
	assert.Equal(t, 3, raw.ContestCount)
}

func TestLeetcodeFetchNoContestHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{
			"matchedUser":{"submitStatsGlobal":{"acSubmissionNum":[{"difficulty":"All","count":2}]}},
			"userContestRanking":null
		}}`))
	}))
	defer srv.Close()

	f := NewLeetcodeFetcher(srv.URL)
	raw, err := f.Fetch(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 1300, raw.ContestRating)
	assert.Equal(t, 0, raw.ContestCount)
}

func TestLeetcodeFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"matchedUser":null,"userContestRanking":null}}`))
	}))
	defer srv.Close()

	f := NewLeetcodeFetcher(srv.URL)
	_, err := f.Fetch(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestLeetcodeFetchMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	f := NewLeetcodeFetcher(srv.URL)
	_, err := f.Fetch(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
