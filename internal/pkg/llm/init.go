package llm

import (
	"DevQuest/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

var roadmapPrompt string
var topicsPrompt string
var taskHelpPrompt string

func InitLLM() error {
	cfg := config.Cfg.LLM

	llm, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)

	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return err
	}

	llmClient = llm

	// 从prompt txt文件中读取prompt
	roadmapPrompt = readPrompt(cfg.PromptsPath.Roadmap)
	topicsPrompt = readPrompt(cfg.PromptsPath.Topics)
	taskHelpPrompt = readPrompt(cfg.PromptsPath.TaskHelp)

	return nil
}
