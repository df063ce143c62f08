package mongo

import (
	"time"
)

// TaskMessage 任务求助对话的一条消息，sender 为 user 或 ai
type TaskMessage struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	TaskID    uint64    `bson:"task_id" json:"taskId"`
	UserID    uint64    `bson:"user_id" json:"userId"`
	Sender    string    `bson:"sender" json:"sender"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
