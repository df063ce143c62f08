package api

import "DevQuest/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	TaskHandler       *handler.TaskHandler
	NoteHandler       *handler.NoteHandler
	GoalHandler       *handler.GoalHandler
	StudyHandler      *handler.StudyHandler
	PlatformHandler   *handler.PlatformHandler
	StatsHandler      *handler.StatsHandler
	CurriculumHandler *handler.CurriculumHandler
}
