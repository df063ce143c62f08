package model

import "time"

// Platform 外部编程平台参照数据，应用启动时播种，运行期不修改
type Platform struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);uniqueIndex:idx_platform_name"`
	Slug string `gorm:"type:varchar(50);uniqueIndex:idx_platform_slug"`
}

func (Platform) TableName() string {
	return "platforms"
}

// PlatformAccount 用户与外部平台的绑定关系，(user, platform) 唯一
type PlatformAccount struct {
	ID          uint64  `gorm:"primaryKey"`
	UserID      uint64  `gorm:"not null;uniqueIndex:idx_user_platform"`
	PlatformID  uint64  `gorm:"not null;uniqueIndex:idx_user_platform"`
	Username    string  `gorm:"type:varchar(150);not null"`
	AccessToken *string `gorm:"type:varchar(255)"`
	LastSynced  *time.Time
	CreatedAt   time.Time

	Platform Platform `gorm:"foreignKey:PlatformID;references:ID"`
}

func (PlatformAccount) TableName() string {
	return "platform_accounts"
}
