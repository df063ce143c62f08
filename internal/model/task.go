package model

import "time"

const (
	TaskTypeAssignment = "assignment"
	TaskTypeStudy      = "study"
	TaskTypeRevision   = "revision"
	TaskTypeProject    = "project"
	TaskTypeExam       = "exam"
	TaskTypeReading    = "reading"
	TaskTypeOther      = "other"
)

type Task struct {
	ID             uint64  `gorm:"primaryKey"`
	UserID         uint64  `gorm:"not null;index:idx_task_user"`
	Title          string  `gorm:"type:varchar(200);not null"`
	SubjectID      *uint64 `gorm:"index"`
	CustomSubject  string  `gorm:"type:varchar(150)"`
	TaskType       string  `gorm:"type:varchar(20);not null;default:study"`
	Deadline       *time.Time `gorm:"type:date"`
	EstimatedHours *float64   `gorm:"type:decimal(4,1)"`
	Difficulty     int        `gorm:"not null;default:0"`
	Completed      bool       `gorm:"not null;default:0"`
	CreatedAt      time.Time
}

func (Task) TableName() string {
	return "tasks"
}
