package consts

// 外部平台 slug，与 platforms 表中的参照数据一致
const (
	PlatformGithub     = "github"
	PlatformLeetcode   = "leetcode"
	PlatformGfg        = "gfg"
	PlatformCodeforces = "codeforces"
	PlatformHackerrank = "hackerrank"
)

// AllPlatformSlugs 全量同步时的遍历顺序
var AllPlatformSlugs = []string{
	PlatformGithub,
	PlatformLeetcode,
	PlatformGfg,
	PlatformCodeforces,
	PlatformHackerrank,
}

const (
	NoteVisibilityPrivate = "private"
	NoteVisibilityPublic  = "public"
)

const (
	GoalStatusPlanned   = "planned"
	GoalStatusLearning  = "learning"
	GoalStatusCompleted = "completed"
)

const (
	TaskSenderUser = "user"
	TaskSenderAI   = "ai"
)

const LeaderboardSize = 100
