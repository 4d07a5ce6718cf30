package dao

import (
	"context"

	"Globetrek/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{Repo: NewRepo[models.User](db)}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist 判断邮箱是否已注册
func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

// FindAllWithRelations 管理端用户总览，带出全部关联
func (u *Users) FindAllWithRelations(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := u.Db.WithContext(ctx).
		Preload("Countries").
		Preload("Reviews").
		Preload("Comments").
		Preload("LikedReviews").
		Preload("SavedCountries").
		Find(&users).Error
	return users, err
}

// FindByIdWithRelations 个人主页，带出全部关联
func (u *Users) FindByIdWithRelations(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	err := u.Db.WithContext(ctx).
		Preload("Countries").
		Preload("Reviews").
		Preload("Comments").
		Preload("LikedReviews").
		Preload("SavedCountries").
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
