package model

import "time"

type LearningGoal struct {
	ID               uint64 `gorm:"primaryKey"`
	UserID           uint64 `gorm:"not null;index:idx_goal_user"`
	Title            string `gorm:"type:varchar(200);not null"`
	Status           string `gorm:"type:varchar(15);not null;default:planned"`
	AiSolution       string `gorm:"type:text"`
	IsSatisfied      *bool
	SatisfactionNote string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (LearningGoal) TableName() string {
	return "learning_goals"
}
