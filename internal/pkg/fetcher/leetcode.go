package fetcher

import (
	"DevQuest/internal/pkg/consts"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const leetcodeAPIDefault = "https://leetcode.com"

const leetcodeProfileQuery = `
query getUserProfile($username: String!) {
  matchedUser(username: $username) {
    submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
      }
    }
  }
  userContestRanking(username: $username) {
    rating
    attendedContestsCount
  }
}`

type leetcodeResp struct {
	Data struct {
		MatchedUser *struct {
			SubmitStatsGlobal struct {
				AcSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStatsGlobal"`
		} `json:"matchedUser"`
		UserContestRanking *struct {
			Rating                float64 `json:"rating"`
			AttendedContestsCount int     `json:"attendedContestsCount"`
		} `json:"userContestRanking"`
	} `json:"data"`
}

// LeetcodeFetcher 通过官方 GraphQL 接口取分难度 AC 数与竞赛数据。
// BaseURL 与其他平台一致是站点根，/graphql 由 Fetch 自己拼
type LeetcodeFetcher struct {
	client  *resty.Client
	BaseURL string
}

func NewLeetcodeFetcher(baseURL string) *LeetcodeFetcher {
	if baseURL == "" {
		baseURL = leetcodeAPIDefault
	}
	client := resty.New().
		SetTimeout(20 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Referer", "https://leetcode.com")

	return &LeetcodeFetcher{
		client:  client,
		BaseURL: baseURL,
	}
}

func (s *LeetcodeFetcher) Slug() string {
	return consts.PlatformLeetcode
}

func (s *LeetcodeFetcher) Fetch(ctx context.Context, username string) (*RawActivity, error) {
	body := map[string]any{
		"query":     leetcodeProfileQuery,
		"variables": map[string]string{"username": username},
	}

	resp, err := s.client.R().SetContext(ctx).SetBody(body).Post(s.BaseURL + "/graphql")
	if err != nil {
		return nil, fmt.Errorf("leetcode graphql: %w", ErrUpstreamUnavailable)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("leetcode graphql status %d: %w", resp.StatusCode(), ErrUpstreamUnavailable)
	}

	var lcResp leetcodeResp
	if err = json.Unmarshal(resp.Body(), &lcResp); err != nil {
		return nil, fmt.Errorf("leetcode graphql: %w", ErrMalformedResponse)
	}

	user := lcResp.Data.MatchedUser
	if user == nil {
		return nil, ErrProfileNotFound
	}

	raw := &RawActivity{
		// 没有竞赛记录时按基准分处理，二次奖励项为 0
		ContestRating: 1300,
	}

	for _, row := range user.SubmitStatsGlobal.AcSubmissionNum {
		switch strings.ToLower(row.Difficulty) {
		case "all":
			raw.Solved = row.Count
		case "easy":
			raw.Easy = row.Count
		case "medium":
			raw.Medium = row.Count
		case "hard":
			raw.Hard = row.Count
		}
	}

	if contest := lcResp.Data.UserContestRanking; contest != nil {
		raw.ContestRating = int(contest.Rating)
		raw.ContestCount = contest.AttendedContestsCount
	}

	return raw, nil
}
