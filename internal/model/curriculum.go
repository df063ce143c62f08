package model

import "time"

// LearningTrack -> Subject -> Topic 三级学习结构参照数据

type LearningTrack struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);uniqueIndex:idx_track_name"`
	Description string `gorm:"type:text"`
}

func (LearningTrack) TableName() string {
	return "learning_tracks"
}

type Subject struct {
	ID      uint64 `gorm:"primaryKey"`
	TrackID uint64 `gorm:"not null;uniqueIndex:idx_track_subject"`
	Name    string `gorm:"type:varchar(100);not null;uniqueIndex:idx_track_subject"`
}

func (Subject) TableName() string {
	return "subjects"
}

type Topic struct {
	ID          uint64 `gorm:"primaryKey"`
	SubjectID   uint64 `gorm:"not null;uniqueIndex:idx_subject_topic"`
	Name        string `gorm:"type:varchar(150);not null;uniqueIndex:idx_subject_topic"`
	Description string `gorm:"type:text"`
}

func (Topic) TableName() string {
	return "topics"
}

type Resource struct {
	ID               uint64 `gorm:"primaryKey"`
	TopicID          uint64 `gorm:"not null;index:idx_resource_topic"`
	Title            string `gorm:"type:varchar(255);not null"`
	URL              string `gorm:"type:varchar(500);not null"`
	Type             string `gorm:"type:varchar(15)"`
	IsBest           bool   `gorm:"not null;default:0"`
	ShortDescription string `gorm:"type:text"`
}

func (Resource) TableName() string {
	return "resources"
}

type Problem struct {
	ID         uint64 `gorm:"primaryKey"`
	TopicID    uint64 `gorm:"not null;index:idx_problem_topic"`
	Title      string `gorm:"type:varchar(200);not null"`
	Platform   string `gorm:"type:varchar(50)"`
	URL        string `gorm:"type:varchar(500)"`
	Difficulty string `gorm:"type:varchar(10)"`
}

func (Problem) TableName() string {
	return "problems"
}

type UserTopicProgress struct {
	ID          uint64 `gorm:"primaryKey"`
	UserID      uint64 `gorm:"not null;uniqueIndex:idx_user_topic"`
	TopicID     uint64 `gorm:"not null;uniqueIndex:idx_user_topic"`
	Status      string `gorm:"type:varchar(15);not null;default:not_started"`
	Mastery     int    `gorm:"not null;default:0"`
	LastStudied *time.Time `gorm:"type:date"`
}

func (UserTopicProgress) TableName() string {
	return "user_topic_progress"
}
