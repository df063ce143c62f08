package xp

// 各平台经验值换算规则。所有公式只做整数运算，负的中间值一律
// 先压到 0 再参与计算。

const (
	XPPerCommit       = 10
	XPPerGfgProblem   = 8
	XPPerCfProblem    = 12
	XPPerHrChallenge  = 6
	XPPerLeetcodeEasy = 5
	XPPerLeetcodeMed  = 10
	XPPerLeetcodeHard = 20
	XPPerContest      = 50
	ContestRatingBase = 1300
	LevelDivisor      = 100
)

// Github 提交数换算
func Github(commits int) int {
	if commits < 0 {
		commits = 0
	}
	return commits * XPPerCommit
}

// Leetcode 按难度分档积分，外加竞赛分的二次奖励项：
// rating 超出 1300 的部分平方后除以 10
func Leetcode(easy, medium, hard, rating, contests int) int {
	if easy < 0 {
		easy = 0
	}
	if medium < 0 {
		medium = 0
	}
	if hard < 0 {
		hard = 0
	}
	if contests < 0 {
		contests = 0
	}

	delta := rating - ContestRatingBase
	if delta < 0 {
		delta = 0
	}

	return easy*XPPerLeetcodeEasy +
		medium*XPPerLeetcodeMed +
		hard*XPPerLeetcodeHard +
		(delta*delta)/10 +
		contests*XPPerContest
}

// Gfg 按解题数换算
func Gfg(solved int) int {
	if solved < 0 {
		solved = 0
	}
	return solved * XPPerGfgProblem
}

// Codeforces 按去重后的 AC 题目数换算
func Codeforces(solved int) int {
	if solved < 0 {
		solved = 0
	}
	return solved * XPPerCfProblem
}

// Hackerrank 按完成的挑战数换算
func Hackerrank(solved int) int {
	if solved < 0 {
		solved = 0
	}
	return solved * XPPerHrChallenge
}

// Total 唯一的总分口径：五个平台小计之和。任何同步路径都不允许
// 自行拼别的公式。
func Total(github, leetcode, gfg, codeforces, hackerrank int) int {
	return github + leetcode + gfg + codeforces + hackerrank
}

// Level 等级由总分推导，向下取整，至少为 1
func Level(totalXP int) int {
	level := totalXP / LevelDivisor
	if level < 1 {
		return 1
	}
	return level
}

// ActivityScore 热力图当日活跃度，0-100 封顶
func ActivityScore(dailyXP int) int {
	if dailyXP < 0 {
		return 0
	}
	if dailyXP > 100 {
		return 100
	}
	return dailyXP
}
