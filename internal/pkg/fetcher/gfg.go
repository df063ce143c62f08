package fetcher

import (
	"DevQuest/internal/pkg/consts"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/go-resty/resty/v2"
)

const (
	gfgBaseURLDefault = "https://www.geeksforgeeks.org"
	gfgRenderTimeout  = 60 * time.Second
)

// GfgFetcher 抓取个人主页渲染后的文本，定位 "Problems Solved" 与
// "Coding Score" 两个标签后面的数字。页面是 JS 渲染的，静态 HTML
// 拿不到数据时回退到无头浏览器。
type GfgFetcher struct {
	client     *resty.Client
	browserCtx context.Context
	BaseURL    string
}

func NewGfgFetcher(baseURL string, browserCtx context.Context) *GfgFetcher {
	if baseURL == "" {
		baseURL = gfgBaseURLDefault
	}
	ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	client := resty.New().
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", ua)

	return &GfgFetcher{
		client:     client,
		browserCtx: browserCtx,
		BaseURL:    baseURL,
	}
}

func (s *GfgFetcher) Slug() string {
	return consts.PlatformGfg
}

func (s *GfgFetcher) Fetch(ctx context.Context, username string) (*RawActivity, error) {
	profileURL := s.BaseURL + "/user/" + username + "/"

	text, err := s.fetchStaticText(ctx, profileURL)
	if err != nil {
		return nil, err
	}

	solved, score, found := parseGfgProfileText(text)
	if !found && s.browserCtx != nil {
		text, err = s.fetchRenderedText(profileURL)
		if err != nil {
			return nil, err
		}
		solved, score, found = parseGfgProfileText(text)
	}
	if !found {
		return nil, fmt.Errorf("gfg profile labels missing: %w", ErrMalformedResponse)
	}

	return &RawActivity{
		Solved:      solved,
		CodingScore: score,
	}, nil
}

func (s *GfgFetcher) fetchStaticText(ctx context.Context, url string) (string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("gfg profile: %w", ErrUpstreamUnavailable)
	}
	if resp.StatusCode() == 404 {
		return "", ErrProfileNotFound
	}
	if resp.IsError() {
		return "", fmt.Errorf("gfg profile status %d: %w", resp.StatusCode(), ErrUpstreamUnavailable)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return "", fmt.Errorf("gfg profile: %w", ErrMalformedResponse)
	}
	return doc.Find("body").Text(), nil
}

func (s *GfgFetcher) fetchRenderedText(url string) (string, error) {
	tabCtx, cancel := chromedp.NewContext(s.browserCtx)
	defer cancel()

	tabCtx, timeoutCancel := context.WithTimeout(tabCtx, gfgRenderTimeout)
	defer timeoutCancel()

	var bodyText string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady(`body`),
		chromedp.Text(`body`, &bodyText),
	)
	if err != nil {
		return "", fmt.Errorf("gfg render: %w", ErrUpstreamUnavailable)
	}
	return bodyText, nil
}

// parseGfgProfileText 逐行扫描页面文本定位标签。数值可能紧跟在标签
// 同一行，也可能在下一个非空行；数字里混入逗号等字符只保留数字位。
func parseGfgProfileText(text string) (solved int, score int, found bool) {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(l); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	for i, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "problems solved"):
			solved = labelValue(lines, i, len("problems solved"))
			found = true
		case strings.HasPrefix(lower, "coding score"):
			score = labelValue(lines, i, len("coding score"))
			found = true
		}
	}
	return solved, score, found
}

func labelValue(lines []string, idx, labelLen int) int {
	if rest := strings.TrimSpace(lines[idx][labelLen:]); rest != "" {
		return digitsToInt(rest)
	}
	if idx+1 < len(lines) {
		return digitsToInt(lines[idx+1])
	}
	return 0
}

func digitsToInt(s string) int {
	n := 0
	for _, c := range s {
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
		}
	}
	return n
}
