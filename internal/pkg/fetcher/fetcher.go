package fetcher

import (
	"context"
	"errors"
)

// 抓取错误分类。同步调用方据此决定对用户提示什么，任何一类错误
// 都不允许产生半写入。
var (
	// ErrProfileNotFound 远端确认该用户名不存在
	ErrProfileNotFound = errors.New("平台上不存在该用户名")
	// ErrUpstreamUnavailable 超时或非 2xx，无法判断用户名是否有效
	ErrUpstreamUnavailable = errors.New("平台暂时无法访问，请稍后重试")
	// ErrMalformedResponse 返回体结构与预期不符
	ErrMalformedResponse = errors.New("平台返回了无法解析的数据")
)

// RawActivity 各平台抓取结果的归一化载体，平台只填自己相关的字段
type RawActivity struct {
	Solved int

	// LeetCode 难度分档与竞赛数据
	Easy          int
	Medium        int
	Hard          int
	ContestRating int
	ContestCount  int

	// GeeksforGeeks
	CodingScore int

	// GitHub
	TotalContributions int
	Repos              int
	DailyCommits       map[string]int // "2006-01-02" -> 当日提交数
}

// Fetcher 平台抓取能力，按 slug 注册，一个平台一个实现
type Fetcher interface {
	Slug() string
	Fetch(ctx context.Context, username string) (*RawActivity, error)
}

type Registry struct {
	fetchers map[string]Fetcher
}

func NewRegistry(fetchers ...Fetcher) *Registry {
	m := make(map[string]Fetcher, len(fetchers))
	for _, f := range fetchers {
		m[f.Slug()] = f
	}
	return &Registry{fetchers: m}
}

func (r *Registry) Get(slug string) (Fetcher, bool) {
	f, ok := r.fetchers[slug]
	return f, ok
}
