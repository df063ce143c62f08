package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Elastic   ElasticConfig   `mapstructure:"elastic"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Platforms PlatformsConfig `mapstructure:"platforms"`
	Sync      SyncConfig      `mapstructure:"sync"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MongoConfig Mongo配置，任务 AI 对话记录存储
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

// ElasticIndices Elastic索引
type ElasticIndices struct {
	NoteIndex string `mapstructure:"note_index"`
}

type LLMConfig struct {
	URL         string           `mapstructure:"url"`
	TextModel   string           `mapstructure:"text_model"`
	ApiKey      string           `mapstructure:"api_key"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	Roadmap  string `mapstructure:"roadmap"`
	Topics   string `mapstructure:"topics"`
	TaskHelp string `mapstructure:"task_help"`
}

// PlatformsConfig 外部编程平台接入配置
type PlatformsConfig struct {
	GithubToken   string `mapstructure:"github_token"`
	GithubAPI     string `mapstructure:"github_api"`
	LeetcodeAPI   string `mapstructure:"leetcode_api"`
	GfgBaseURL    string `mapstructure:"gfg_base_url"`
	CodeforcesAPI string `mapstructure:"codeforces_api"`
	HackerrankAPI string `mapstructure:"hackerrank_api"`
}

// SyncConfig 同步行为配置
type SyncConfig struct {
	LockTTL      int `mapstructure:"lock_ttl"`
	LockRetries  int `mapstructure:"lock_retries"`
	EventPerPage int `mapstructure:"event_per_page"`
}
