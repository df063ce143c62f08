package docparse

import "strings"

// 命中一个关键词 +2，再按词数加档，最后折算到 1-5
var hardWords = []string{
	"algorithm", "theorem", "proof", "derivation", "complexity",
	"neural", "regression", "integration", "differential",
	"optimization", "compiler", "cryptography", "architecture",
	"machine learning", "deep learning", "probability", "statistics",
}

// EstimateDifficulty 根据学习材料文本估算任务难度（1 最易 5 最难）
func EstimateDifficulty(text string) int {
	lower := strings.ToLower(text)
	length := len(strings.Fields(lower))

	score := 0
	for _, w := range hardWords {
		if strings.Contains(lower, w) {
			score += 2
		}
	}

	switch {
	case length > 3000:
		score += 4
	case length > 1500:
		score += 3
	case length > 700:
		score += 2
	case length > 300:
		score += 1
	}

	switch {
	case score <= 1:
		return 1
	case score <= 3:
		return 2
	case score <= 5:
		return 3
	case score <= 7:
		return 4
	default:
		return 5
	}
}
