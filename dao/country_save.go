package dao

import (
	"context"
	"errors"

	"Globetrek/models"

	"gorm.io/gorm"
)

type CountrySaveDAO struct {
	Repo[models.CountrySave]
}

func NewCountrySaveDAO(db *gorm.DB) *CountrySaveDAO {
	return &CountrySaveDAO{Repo: NewRepo[models.CountrySave](db)}
}

// GetByUserCountry 用 (user_id, country_id) 组合键直查收藏记录，未命中返回 nil
func (d *CountrySaveDAO) GetByUserCountry(ctx context.Context, userID, countryID uint64) (*models.CountrySave, error) {
	var item models.CountrySave
	err := d.Db.WithContext(ctx).Where("user_id = ? AND country_id = ?", userID, countryID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// IsSaved 是否已收藏
func (d *CountrySaveDAO) IsSaved(ctx context.Context, userID, countryID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND country_id = ?", userID, countryID)
}

// ListCountryIDsByUser 用户收藏的国家ID，按收藏时间倒序
func (d *CountrySaveDAO) ListCountryIDsByUser(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.CountrySave{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("country_id", &ids).Error
	return ids, err
}
