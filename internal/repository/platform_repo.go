package repository

import (
	"DevQuest/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlatformRepo interface {
	ListPlatforms(ctx context.Context) ([]*model.Platform, error)
	GetPlatformBySlug(ctx context.Context, slug string) (*model.Platform, error)
	SeedPlatforms(ctx context.Context, platforms []*model.Platform) error

	GetAccountById(ctx context.Context, id uint64) (*model.PlatformAccount, error)
	GetAccountByUserAndSlug(ctx context.Context, userID uint64, slug string) (*model.PlatformAccount, error)
	GetAccountsByUser(ctx context.Context, userID uint64) ([]*model.PlatformAccount, error)
	GetAllAccounts(ctx context.Context) ([]*model.PlatformAccount, error)
	CreateAccount(ctx context.Context, account *model.PlatformAccount) error
	UpdateAccount(ctx context.Context, account *model.PlatformAccount) error
	DeleteAccount(ctx context.Context, id uint64) error
}

type PlatformRepoImpl struct {
	db *gorm.DB
}

func NewPlatformRepo(db *gorm.DB) PlatformRepo {
	return &PlatformRepoImpl{db: db}
}

func (s *PlatformRepoImpl) ListPlatforms(ctx context.Context) ([]*model.Platform, error) {
	platforms := make([]*model.Platform, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}

func (s *PlatformRepoImpl) GetPlatformBySlug(ctx context.Context, slug string) (*model.Platform, error) {
	platform := &model.Platform{}
	result := s.db.WithContext(ctx).Where("slug = ?", slug).First(platform)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return platform, nil
}

// SeedPlatforms 启动时播种参照数据，slug 冲突时跳过
func (s *PlatformRepoImpl) SeedPlatforms(ctx context.Context, platforms []*model.Platform) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&platforms).Error
}

func (s *PlatformRepoImpl) GetAccountById(ctx context.Context, id uint64) (*model.PlatformAccount, error) {
	account := &model.PlatformAccount{}
	result := s.db.WithContext(ctx).Preload("Platform").First(account, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return account, nil
}

func (s *PlatformRepoImpl) GetAccountByUserAndSlug(ctx context.Context, userID uint64, slug string) (*model.PlatformAccount, error) {
	account := &model.PlatformAccount{}
	result := s.db.WithContext(ctx).
		Preload("Platform").
		Joins("JOIN platforms ON platforms.id = platform_accounts.platform_id").
		Where("platform_accounts.user_id = ? AND platforms.slug = ?", userID, slug).
		First(account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return account, nil
}

func (s *PlatformRepoImpl) GetAccountsByUser(ctx context.Context, userID uint64) ([]*model.PlatformAccount, error) {
	accounts := make([]*model.PlatformAccount, 0)
	result := s.db.WithContext(ctx).
		Preload("Platform").
		Where("user_id = ?", userID).
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

func (s *PlatformRepoImpl) GetAllAccounts(ctx context.Context) ([]*model.PlatformAccount, error) {
	accounts := make([]*model.PlatformAccount, 0)
	result := s.db.WithContext(ctx).Preload("Platform").Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

func (s *PlatformRepoImpl) CreateAccount(ctx context.Context, account *model.PlatformAccount) error {
	return s.db.WithContext(ctx).Create(account).Error
}

func (s *PlatformRepoImpl) UpdateAccount(ctx context.Context, account *model.PlatformAccount) error {
	return s.db.WithContext(ctx).Save(account).Error
}

func (s *PlatformRepoImpl) DeleteAccount(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.PlatformAccount{}, id).Error
}
