package fetcher

import (
	"DevQuest/internal/pkg/consts"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const cfBaseURLDefault = "https://codeforces.com"

// CodeforcesFetcher 通过官方 API 拉取提交记录，按题目去重统计 AC 数。
type CodeforcesFetcher struct {
	client  *resty.Client
	BaseURL string
}

func NewCodeforcesFetcher(baseURL string) *CodeforcesFetcher {
	if baseURL == "" {
		baseURL = cfBaseURLDefault
	}
	return &CodeforcesFetcher{
		client:  resty.New().SetTimeout(15 * time.Second),
		BaseURL: baseURL,
	}
}

func (s *CodeforcesFetcher) Slug() string {
	return consts.PlatformCodeforces
}

type cfSubmission struct {
	Verdict string `json:"verdict"`
	Problem struct {
		ContestID int    `json:"contestId"`
		Index     string `json:"index"`
		Name      string `json:"name"`
	} `json:"problem"`
}

type cfStatusResp struct {
	Status  string         `json:"status"`
	Comment string         `json:"comment"`
	Result  []cfSubmission `json:"result"`
}

func (s *CodeforcesFetcher) Fetch(ctx context.Context, username string) (*RawActivity, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("handle", username).
		Get(s.BaseURL + "/api/user.status")
	if err != nil {
		return nil, fmt.Errorf("codeforces user.status: %w", ErrUpstreamUnavailable)
	}

	var body cfStatusResp
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("codeforces user.status: %w", ErrMalformedResponse)
	}
	// 接口对未知 handle 返回 400 + status=FAILED，其余错误照常视为上游故障
	if body.Status != "OK" {
		if resp.StatusCode() == 400 || resp.StatusCode() == 404 {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("codeforces status %q: %w", body.Comment, ErrUpstreamUnavailable)
	}

	return &RawActivity{Solved: countAcceptedProblems(body.Result)}, nil
}

// countAcceptedProblems 同一题多次 AC 只计一次
func countAcceptedProblems(subs []cfSubmission) int {
	seen := make(map[string]struct{})
	for _, sub := range subs {
		if sub.Verdict != "OK" {
			continue
		}
		key := fmt.Sprintf("%d-%s-%s", sub.Problem.ContestID, sub.Problem.Index, sub.Problem.Name)
		seen[key] = struct{}{}
	}
	return len(seen)
}
