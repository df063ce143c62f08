package model

import "time"

type StudySession struct {
	ID              uint64    `gorm:"primaryKey"`
	UserID          uint64    `gorm:"not null;index:idx_session_user"`
	TopicID         *uint64   `gorm:"index"`
	DurationMinutes int       `gorm:"not null"`
	StudyDate       time.Time `gorm:"type:date;not null"`
	CreatedAt       time.Time
}

func (StudySession) TableName() string {
	return "study_sessions"
}

// StudyStreak 连续学习天数，首次活动时惰性创建，只由 StudyService 的
// 日切换规则变更
type StudyStreak struct {
	ID            uint64 `gorm:"primaryKey"`
	UserID        uint64 `gorm:"not null;uniqueIndex:idx_streak_user"`
	CurrentStreak int    `gorm:"not null;default:0"`
	LongestStreak int    `gorm:"not null;default:0"`
	LastActive    *time.Time `gorm:"type:date"`
	UpdatedAt     time.Time
}

func (StudyStreak) TableName() string {
	return "study_streaks"
}
