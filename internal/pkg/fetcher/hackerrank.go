package fetcher

import (
	"DevQuest/internal/pkg/consts"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const hrBaseURLDefault = "https://www.hackerrank.com"

// HackerrankFetcher 走 /rest/hackers/{username}/profile 读取公开档案
type HackerrankFetcher struct {
	client  *resty.Client
	BaseURL string
}

func NewHackerrankFetcher(baseURL string) *HackerrankFetcher {
	if baseURL == "" {
		baseURL = hrBaseURLDefault
	}
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("User-Agent", "Mozilla/5.0")
	return &HackerrankFetcher{client: client, BaseURL: baseURL}
}

func (s *HackerrankFetcher) Slug() string {
	return consts.PlatformHackerrank
}

type hrProfileResp struct {
	Model *struct {
		Username         string `json:"username"`
		SolvedChallenges int    `json:"solved_challenges"`
	} `json:"model"`
}

func (s *HackerrankFetcher) Fetch(ctx context.Context, username string) (*RawActivity, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.BaseURL + "/rest/hackers/" + username + "/profile")
	if err != nil {
		return nil, fmt.Errorf("hackerrank profile: %w", ErrUpstreamUnavailable)
	}
	if resp.StatusCode() == 404 {
		return nil, ErrProfileNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("hackerrank status %d: %w", resp.StatusCode(), ErrUpstreamUnavailable)
	}

	var body hrProfileResp
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("hackerrank profile: %w", ErrMalformedResponse)
	}
	if body.Model == nil {
		return nil, ErrProfileNotFound
	}

	return &RawActivity{Solved: body.Model.SolvedChallenges}, nil
}
