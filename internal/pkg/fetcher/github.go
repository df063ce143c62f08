package fetcher

import (
	"DevQuest/internal/pkg/consts"
	"context"
	"fmt"
	log "log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	githubAPIDefault          = "https://api.github.com"
	githubEventPerPageDefault = 100
)

type githubEvent struct {
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	Payload   struct {
		Commits []struct {
			Sha string `json:"sha"`
		} `json:"commits"`
	} `json:"payload"`
}

type githubGraphQLResp struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"errors"`
}

const githubContributionsQuery = `
query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
      }
    }
  }
}`

// GithubFetcher 拉取公开 PushEvent 归并为按日提交数；配置了 token 时
// 额外走 GraphQL 取生涯总贡献数
type GithubFetcher struct {
	client       *resty.Client
	BaseURL      string
	Token        string
	eventPerPage int
}

func NewGithubFetcher(baseURL, token string, eventPerPage int) *GithubFetcher {
	if baseURL == "" {
		baseURL = githubAPIDefault
	}
	if eventPerPage <= 0 {
		eventPerPage = githubEventPerPageDefault
	}
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/vnd.github+json")

	return &GithubFetcher{
		client:       client,
		BaseURL:      baseURL,
		Token:        token,
		eventPerPage: eventPerPage,
	}
}

func (s *GithubFetcher) Slug() string {
	return consts.PlatformGithub
}

func (s *GithubFetcher) Fetch(ctx context.Context, username string) (*RawActivity, error) {
	events, err := s.fetchEvents(ctx, username)
	if err != nil {
		return nil, err
	}

	raw := &RawActivity{
		DailyCommits: reduceDailyCommits(events),
	}
	for _, c := range raw.DailyCommits {
		raw.TotalContributions += c
	}

	// GraphQL 的生涯贡献数更准，但需要 token，拿不到就退回事件累计值
	if s.Token != "" {
		total, err := s.fetchTotalContributions(ctx, username)
		if err != nil {
			log.WarnContext(ctx, "github graphql fallback to event count", "username", username, "err", err)
		} else {
			raw.TotalContributions = total
		}
	}

	// 仓库数非关键指标，取不到不拦截同步
	if repos, err := s.fetchRepoCount(ctx, username); err != nil {
		log.WarnContext(ctx, "github repo count unavailable", "username", username, "err", err)
	} else {
		raw.Repos = repos
	}

	return raw, nil
}

func (s *GithubFetcher) fetchRepoCount(ctx context.Context, username string) (int, error) {
	req := s.client.R().SetContext(ctx)
	if s.Token != "" {
		req.SetHeader("Authorization", "Bearer "+s.Token)
	}

	resp, err := req.Get(s.BaseURL + "/users/" + username)
	if err != nil {
		return 0, fmt.Errorf("github user: %w", ErrUpstreamUnavailable)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("github user status %d: %w", resp.StatusCode(), ErrUpstreamUnavailable)
	}

	var user struct {
		PublicRepos int `json:"public_repos"`
	}
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return 0, fmt.Errorf("github user: %w", ErrMalformedResponse)
	}
	return user.PublicRepos, nil
}

func (s *GithubFetcher) fetchEvents(ctx context.Context, username string) ([]githubEvent, error) {
	req := s.client.R().SetContext(ctx).
		SetQueryParam("per_page", fmt.Sprintf("%d", s.eventPerPage))
	if s.Token != "" {
		req.SetHeader("Authorization", "Bearer "+s.Token)
	}

	resp, err := req.Get(s.BaseURL + "/users/" + username + "/events")
	if err != nil {
		return nil, fmt.Errorf("github events: %w", ErrUpstreamUnavailable)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrProfileNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("github events status %d: %w", resp.StatusCode(), ErrUpstreamUnavailable)
	}

	var events []githubEvent
	if err = json.Unmarshal(resp.Body(), &events); err != nil {
		return nil, fmt.Errorf("github events: %w", ErrMalformedResponse)
	}
	return events, nil
}

func (s *GithubFetcher) fetchTotalContributions(ctx context.Context, username string) (int, error) {
	body := map[string]any{
		"query":     githubContributionsQuery,
		"variables": map[string]string{"login": username},
	}

	resp, err := s.client.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.Token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(s.BaseURL + "/graphql")
	if err != nil {
		return 0, fmt.Errorf("github graphql: %w", ErrUpstreamUnavailable)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("github graphql status %d: %w", resp.StatusCode(), ErrUpstreamUnavailable)
	}

	var gqlResp githubGraphQLResp
	if err = json.Unmarshal(resp.Body(), &gqlResp); err != nil {
		return 0, fmt.Errorf("github graphql: %w", ErrMalformedResponse)
	}
	if len(gqlResp.Errors) > 0 {
		return 0, fmt.Errorf("github graphql %s: %w", gqlResp.Errors[0].Message, ErrMalformedResponse)
	}
	if gqlResp.Data.User == nil {
		return 0, ErrProfileNotFound
	}

	return gqlResp.Data.User.ContributionsCollection.ContributionCalendar.TotalContributions, nil
}

// reduceDailyCommits 把 PushEvent 流归并为 日期 -> 提交数。
// 同一天多次推送做累加，非推送事件忽略。
func reduceDailyCommits(events []githubEvent) map[string]int {
	daily := make(map[string]int)
	for _, event := range events {
		if event.Type != "PushEvent" {
			continue
		}
		if len(event.CreatedAt) < 10 {
			continue
		}
		day := event.CreatedAt[:10]
		commitCount := len(event.Payload.Commits)
		if commitCount == 0 {
			continue
		}
		daily[day] += commitCount
	}
	return daily
}
