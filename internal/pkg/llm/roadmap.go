package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// GenerateRoadmap 按学习目标生成结构化路线图文本，一个目标只生成一次，
// 结果由调用方落库
func GenerateRoadmap(ctx context.Context, goalTitle string) (string, error) {
	userPrompt := fmt.Sprintf(`Create a structured learning roadmap for this goal:

%s

Return clearly in this format:

1. What this goal means
2. Core topics to learn (bullets)
3. Best free resources (YouTube, notes, practice sites)
4. Practice strategy
5. 30-day beginner roadmap
6. How to measure success`, goalTitle)

	resp, err := fetchModel(ctx, roadmapPrompt, userPrompt, 0.4)
	if err != nil {
		return "", err
	}
	return firstChoice(resp)
}

// ExtractTopics 从目标标题提炼 8-12 个核心学习主题
func ExtractTopics(ctx context.Context, goalTitle string) ([]string, error) {
	userPrompt := fmt.Sprintf(`For the learning goal: %q

Return a JSON array of 8-12 core study topics.
Keep topics short and academic.
Do not explain anything.

Example format:
["HTML Basics", "CSS Fundamentals", "JavaScript Basics"]`, goalTitle)

	resp, err := fetchModel(ctx, topicsPrompt, userPrompt, 0.2)
	if err != nil {
		return nil, err
	}
	content, err := firstChoice(resp)
	if err != nil {
		return nil, err
	}
	return parseTopicList(content)
}

// TaskHelp 把任务上下文连同用户问题发给模型，返回辅导回复
func TaskHelp(ctx context.Context, taskContext string, question string) (string, error) {
	userPrompt := fmt.Sprintf("Task context:\n%s\n\nStudent question:\n%s", taskContext, question)

	resp, err := fetchModel(ctx, taskHelpPrompt, userPrompt, 0.7)
	if err != nil {
		return "", err
	}
	return firstChoice(resp)
}

// parseTopicList 模型偶尔会把数组包在 markdown 代码块或多余文字里，
// 截取首尾方括号之间的部分再解析
func parseTopicList(content string) ([]string, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("模型返回的主题列表无法解析: %s", content)
	}

	var topics []string
	if err := json.Unmarshal([]byte(content[start:end+1]), &topics); err != nil {
		return nil, fmt.Errorf("模型返回的主题列表无法解析: %w", err)
	}

	cleaned := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.TrimSpace(t); len(t) > 2 {
			cleaned = append(cleaned, t)
		}
	}
	return cleaned, nil
}
