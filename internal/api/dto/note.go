package dto

import "time"

// NoteBaseDTO 笔记 - 新增或修改
type NoteBaseDTO struct {
	Title       string `json:"title" binding:"required" validate:"min=1,max=200"`
	Subject     string `json:"subject" validate:"max=150"`
	TextContent string `json:"text_content"`
	Visibility  string `json:"visibility" validate:"omitempty,oneof=private public"`
}

// NoteDTO 笔记
type NoteDTO struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject,omitempty"`
	TextContent string    `json:"text_content"`
	Visibility  string    `json:"visibility"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SearchNotesDTO 公共笔记库检索
type SearchNotesDTO struct {
	Keyword string `form:"keyword"`
	PageDTO
}
