package dto

import "time"

// LogSessionDTO 学习时段登记
type LogSessionDTO struct {
	DurationMinutes int     `json:"duration_minutes" binding:"required" validate:"gt=0,lte=1440"`
	StudyDate       string  `json:"study_date" validate:"omitempty,datetime=2006-01-02"`
	TopicID         *uint64 `json:"topic_id"`
}

// SessionDTO 学习时段
type SessionDTO struct {
	ID              uint64    `json:"id"`
	TopicID         *uint64   `json:"topic_id,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	StudyDate       time.Time `json:"study_date"`
}

// StudyHistoryDTO 学习历史及累计
type StudyHistoryDTO struct {
	Sessions     []*SessionDTO `json:"sessions"`
	TotalMinutes int64         `json:"total_minutes"`
	TodayMinutes int64         `json:"today_minutes"`
}

// StreakDTO 连续学习
type StreakDTO struct {
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastActive    *time.Time `json:"last_active,omitempty"`
}

// TopicProgressDTO 主题掌握进度
type TopicProgressDTO struct {
	TopicID     uint64     `json:"topic_id"`
	Status      string     `json:"status" validate:"omitempty,oneof=not_started learning done"`
	Mastery     int        `json:"mastery" validate:"min=0,max=100"`
	LastStudied *time.Time `json:"last_studied,omitempty"`
}
