package repository

import (
	"context"
	"time"

	"pos-backend/internal/model"

	"gorm.io/gorm"
)

type SysUserRepository interface {
	Create(ctx context.Context, user *model.SysUser) error
	Update(ctx context.Context, user *model.SysUser) error
	FindByID(ctx context.Context, id uint) (*model.SysUser, error)
	FindByUsername(ctx context.Context, username string) (*model.SysUser, error)
	List(ctx context.Context, storeCode string) ([]model.SysUser, error)

	CreateRefreshToken(ctx context.Context, token *model.RefreshToken) error
	FindRefreshToken(ctx context.Context, token string) (*model.RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteExpiredRefreshTokens(ctx context.Context) error
}

type sysUserRepository struct {
	db *gorm.DB
}

func NewSysUserRepository(db *gorm.DB) SysUserRepository {
	return &sysUserRepository{db: db}
}

func (r *sysUserRepository) Create(ctx context.Context, user *model.SysUser) error {
	return GetDB(ctx, r.db).Create(user).Error
}

func (r *sysUserRepository) Update(ctx context.Context, user *model.SysUser) error {
	return GetDB(ctx, r.db).Save(user).Error
}

func (r *sysUserRepository) FindByID(ctx context.Context, id uint) (*model.SysUser, error) {
	var user model.SysUser
	if err := GetDB(ctx, r.db).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *sysUserRepository) FindByUsername(ctx context.Context, username string) (*model.SysUser, error) {
	var user model.SysUser
	if err := GetDB(ctx, r.db).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *sysUserRepository) List(ctx context.Context, storeCode string) ([]model.SysUser, error) {
	var users []model.SysUser
	db := GetDB(ctx, r.db)
	if storeCode != "" {
		db = db.Where("store_code = ?", storeCode)
	}
	if err := db.Order("username asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *sysUserRepository) CreateRefreshToken(ctx context.Context, token *model.RefreshToken) error {
	return GetDB(ctx, r.db).Create(token).Error
}

func (r *sysUserRepository) FindRefreshToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	var rt model.RefreshToken
	if err := GetDB(ctx, r.db).Where("token = ?", token).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *sysUserRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	return GetDB(ctx, r.db).Where("token = ?", token).Delete(&model.RefreshToken{}).Error
}

func (r *sysUserRepository) DeleteExpiredRefreshTokens(ctx context.Context) error {
	return GetDB(ctx, r.db).Where("expires_at < ?", time.Now()).Delete(&model.RefreshToken{}).Error
}
