package xp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroActivityYieldsZeroXP(t *testing.T) {
	assert.Equal(t, 0, Github(0))
	assert.Equal(t, 0, Leetcode(0, 0, 0, 1300, 0))
	assert.Equal(t, 0, Gfg(0))
	assert.Equal(t, 0, Codeforces(0))
	assert.Equal(t, 0, Hackerrank(0))
}

func TestGithubXP(t *testing.T) {
	assert.Equal(t, 120, Github(12))
	assert.Equal(t, 0, Github(-3))
}

func TestLeetcodeXP(t *testing.T) {
	// 10 easy, 5 medium, 1 hard, rating 1500, 3 contests
	// 50 + 50 + 20 + (200^2)/10 + 150 = 4270
	assert.Equal(t, 4270, Leetcode(10, 5, 1, 1500, 3))
}

func TestLeetcodeRatingBelowBaseClampsToZero(t *testing.T) {
	// 1200 < 1300，二次项必须为 0 而不是负数的平方
	assert.Equal(t, 5, Leetcode(1, 0, 0, 1200, 0))
	assert.Equal(t, 5, Leetcode(1, 0, 0, 1300, 0))
}

func TestLeetcodeQuadraticTermTruncates(t *testing.T) {
	// delta=33 -> 1089/10 -> 108（截断而非四舍五入）
	assert.Equal(t, 108, Leetcode(0, 0, 0, 1333, 0))
}

func TestPerProblemFormulas(t *testing.T) {
	assert.Equal(t, 80, Gfg(10))
	assert.Equal(t, 120, Codeforces(10))
	assert.Equal(t, 60, Hackerrank(10))
}

func TestTotalIsSumOfSubtotals(t *testing.T) {
	assert.Equal(t, 150, Total(10, 20, 30, 40, 50))
	assert.Equal(t, 0, Total(0, 0, 0, 0, 0))
}

func TestLevelFloorsAtOne(t *testing.T) {
	assert.Equal(t, 1, Level(0))
	assert.Equal(t, 1, Level(99))
	assert.Equal(t, 1, Level(100))
	assert.Equal(t, 42, Level(4270))
}

func TestActivityScoreClamps(t *testing.T) {
	assert.Equal(t, 0, ActivityScore(-5))
	assert.Equal(t, 55, ActivityScore(55))
	assert.Equal(t, 100, ActivityScore(1000))
}
