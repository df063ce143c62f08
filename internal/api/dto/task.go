package dto

import "time"

// TaskBaseDTO 任务 - 新增或修改
type TaskBaseDTO struct {
	Title          string   `json:"title" binding:"required" validate:"min=1,max=200"`
	SubjectID      *uint64  `json:"subject_id"`
	CustomSubject  string   `json:"custom_subject" validate:"max=150"`
	TaskType       string   `json:"task_type" validate:"omitempty,oneof=assignment study revision project exam reading other"`
	Deadline       *string  `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours *float64 `json:"estimated_hours" validate:"omitempty,gt=0,lte=99"`

	// 学习材料原文，用于估算任务难度，不落库
	MaterialText string `json:"material_text"`
}

// TaskDTO 任务
type TaskDTO struct {
	ID             uint64     `json:"id"`
	Title          string     `json:"title"`
	SubjectID      *uint64    `json:"subject_id,omitempty"`
	CustomSubject  string     `json:"custom_subject,omitempty"`
	TaskType       string     `json:"task_type"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
	Difficulty     int        `json:"difficulty"`
	Completed      bool       `json:"completed"`
	CreatedAt      time.Time  `json:"created_at"`
}

// TaskHelpDTO 任务求助
type TaskHelpDTO struct {
	Question string `json:"question" binding:"required" validate:"min=1,max=2000"`
}

// TaskMessageDTO 任务求助对话消息
type TaskMessageDTO struct {
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
