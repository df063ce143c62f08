package dto

import "time"

// GoalBaseDTO 学习目标 - 新增
type GoalBaseDTO struct {
	Title string `json:"title" binding:"required" validate:"min=1,max=200"`
}

// GoalDTO 学习目标
type GoalDTO struct {
	ID               uint64    `json:"id"`
	Title            string    `json:"title"`
	Status           string    `json:"status"`
	AiSolution       string    `json:"ai_solution,omitempty"`
	IsSatisfied      *bool     `json:"is_satisfied,omitempty"`
	SatisfactionNote string    `json:"satisfaction_note,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// GoalSatisfactionDTO 对 AI 路线图的满意度反馈
type GoalSatisfactionDTO struct {
	Satisfied *bool  `json:"satisfied" binding:"required"`
	Note      string `json:"note" validate:"max=1000"`
}

// GoalTopicsDTO 从目标提炼出的主题列表
type GoalTopicsDTO struct {
	GoalID uint64   `json:"goal_id"`
	Topics []string `json:"topics"`
}
