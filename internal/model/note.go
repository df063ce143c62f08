package model

import "time"

type Note struct {
	ID          uint64 `gorm:"primaryKey"`
	UserID      uint64 `gorm:"not null;index:idx_note_user"`
	Title       string `gorm:"type:varchar(200);not null"`
	Subject     string `gorm:"type:varchar(150)"`
	TextContent string `gorm:"type:text"`
	Visibility  string `gorm:"type:varchar(10);not null;default:private"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Note) TableName() string {
	return "notes"
}
