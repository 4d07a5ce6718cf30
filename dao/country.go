package dao

import (
	"context"

	"Globetrek/models"

	"gorm.io/gorm"
)

type CountryDAO struct {
	Repo[models.Country]
}

func NewCountryDAO(db *gorm.DB) *CountryDAO {
	return &CountryDAO{Repo: NewRepo[models.Country](db)}
}

// CountByOwner 统计管理员名下国家数，管理员注销前置校验用
func (d *CountryDAO) CountByOwner(ctx context.Context, ownerID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Country{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// FindAllWithReviews 国家列表，带维护人和点评
func (d *CountryDAO) FindAllWithReviews(ctx context.Context) ([]*models.Country, error) {
	var countries []*models.Country
	err := d.Db.WithContext(ctx).
		Preload("Owner").
		Preload("Reviews").
		Preload("Reviews.Author").
		Find(&countries).Error
	return countries, err
}

// FindByIdWithReviews 国家详情
func (d *CountryDAO) FindByIdWithReviews(ctx context.Context, id uint64) (*models.Country, error) {
	var country models.Country
	err := d.Db.WithContext(ctx).
		Preload("Owner").
		Preload("Reviews").
		Preload("Reviews.Author").
		First(&country, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// FindByIDs 按收藏顺序还原国家列表用
func (d *CountryDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Country, error) {
	if len(ids) == 0 {
		return []*models.Country{}, nil
	}
	var countries []*models.Country
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&countries).Error
	return countries, err
}
