package es

import "time"

// NoteES 公开笔记在索引里的文档结构，私有笔记不进索引
type NoteES struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}
