package service

import (
	"context"
	"errors"

	"Globetrek/dao"
	"Globetrek/dao/cache"
	"Globetrek/models"
	"Globetrek/pkg/log"
	"Globetrek/pkg/snowflake"
	"Globetrek/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IRelationService = (*RelationService)(nil)

type IRelationService interface {
	ToggleLike(ctx context.Context, userID, reviewID uint64) (*types.ToggleResult, error)
	ToggleSave(ctx context.Context, userID, countryID uint64) (*types.ToggleResult, error)
	IsLiked(ctx context.Context, userID, reviewID uint64) (bool, error)
	IsSaved(ctx context.Context, userID, countryID uint64) (bool, error)
	ListLikedReviews(ctx context.Context, userID uint64) ([]*models.Review, error)
	ListSavedCountries(ctx context.Context, userID uint64) ([]*models.Country, error)
}

type RelationService struct {
	Likes     *dao.ReviewLikeDAO
	Saves     *dao.CountrySaveDAO
	Reviews   *dao.ReviewDAO
	Countries *dao.CountryDAO
	Cache     *cache.RelationCache
}

// toggleRow 单事务内翻转一条 (user, target) 关系行:
// 组合键直查，命中删、未命中建。唯一键是并发场景下的唯一串行化手段，
// 插入撞上 gorm.ErrDuplicatedKey 说明对手方刚创建成功，改为删除重试；
// 删除影响 0 行说明行又被别人拿走，抛 ErrConflict 交给调用方重试
func toggleRow[T any](ctx context.Context, db *gorm.DB, pairWhere string, userID, targetID uint64, build func() *T) (*types.ToggleResult, error) {
	var result *types.ToggleResult

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []T
		if err := tx.Where(pairWhere, userID, targetID).Limit(1).Find(&rows).Error; err != nil {
			return err
		}

		if len(rows) > 0 {
			del := tx.Where(pairWhere, userID, targetID).Delete(new(T))
			if del.Error != nil {
				return del.Error
			}
			if del.RowsAffected == 0 {
				return ErrConflict
			}
			result = &types.ToggleResult{Action: types.ActionRemoved, Row: &rows[0]}
			return nil
		}

		row := build()
		if err := tx.Create(row).Error; err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
			// 输掉创建竞争，重试为删除
			var lost []T
			if err := tx.Where(pairWhere, userID, targetID).Limit(1).Find(&lost).Error; err != nil {
				return err
			}
			del := tx.Where(pairWhere, userID, targetID).Delete(new(T))
			if del.Error != nil {
				return del.Error
			}
			if del.RowsAffected == 0 || len(lost) == 0 {
				return ErrConflict
			}
			result = &types.ToggleResult{Action: types.ActionRemoved, Row: &lost[0]}
			return nil
		}
		result = &types.ToggleResult{Action: types.ActionAdded, Row: row}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *RelationService) ToggleLike(ctx context.Context, userID, reviewID uint64) (*types.ToggleResult, error) {
	exist, err := s.Reviews.IsExist(ctx, "id = ?", reviewID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrNotFound
	}

	result, err := toggleRow(ctx, s.Likes.Db, "user_id = ? AND review_id = ?", userID, reviewID, func() *models.ReviewLike {
		return &models.ReviewLike{ID: snowflake.GenID(), UserID: userID, ReviewID: reviewID}
	})
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		var cacheErr error
		if result.Action == types.ActionAdded {
			cacheErr = s.Cache.AddLiked(ctx, userID, reviewID)
		} else {
			cacheErr = s.Cache.RemLiked(ctx, userID, reviewID)
		}
		if cacheErr != nil {
			log.L.Warn("update like cache failed", zap.Uint64("user_id", userID), zap.Error(cacheErr))
		}
	}
	return result, nil
}

func (s *RelationService) ToggleSave(ctx context.Context, userID, countryID uint64) (*types.ToggleResult, error) {
	exist, err := s.Countries.IsExist(ctx, "id = ?", countryID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrNotFound
	}

	result, err := toggleRow(ctx, s.Saves.Db, "user_id = ? AND country_id = ?", userID, countryID, func() *models.CountrySave {
		return &models.CountrySave{ID: snowflake.GenID(), UserID: userID, CountryID: countryID}
	})
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		var cacheErr error
		if result.Action == types.ActionAdded {
			cacheErr = s.Cache.AddSaved(ctx, userID, countryID)
		} else {
			cacheErr = s.Cache.RemSaved(ctx, userID, countryID)
		}
		if cacheErr != nil {
			log.L.Warn("update save cache failed", zap.Uint64("user_id", userID), zap.Error(cacheErr))
		}
	}
	return result, nil
}

// IsLiked 先查缓存，不可用时退回数据库
func (s *RelationService) IsLiked(ctx context.Context, userID, reviewID uint64) (bool, error) {
	if s.Cache != nil {
		if liked, ok := s.Cache.IsLiked(ctx, userID, reviewID); ok {
			return liked, nil
		}
	}
	return s.Likes.IsLiked(ctx, userID, reviewID)
}

// IsSaved 先查缓存，不可用时退回数据库
func (s *RelationService) IsSaved(ctx context.Context, userID, countryID uint64) (bool, error) {
	if s.Cache != nil {
		if saved, ok := s.Cache.IsSaved(ctx, userID, countryID); ok {
			return saved, nil
		}
	}
	return s.Saves.IsSaved(ctx, userID, countryID)
}

// ListLikedReviews 用户点赞过的点评，按点赞时间倒序
func (s *RelationService) ListLikedReviews(ctx context.Context, userID uint64) ([]*models.Review, error) {
	ids, err := s.Likes.ListReviewIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.Reviews.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return orderByIDs(reviews, ids, func(r *models.Review) uint64 { return r.ID }), nil
}

// ListSavedCountries 用户收藏的国家，按收藏时间倒序
func (s *RelationService) ListSavedCountries(ctx context.Context, userID uint64) ([]*models.Country, error) {
	ids, err := s.Saves.ListCountryIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	countries, err := s.Countries.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return orderByIDs(countries, ids, func(c *models.Country) uint64 { return c.ID }), nil
}

// orderByIDs IN 查询不保序，按原ID顺序还原
func orderByIDs[T any](items []*T, ids []uint64, idOf func(*T) uint64) []*T {
	m := make(map[uint64]*T, len(items))
	for _, item := range items {
		m[idOf(item)] = item
	}
	ordered := make([]*T, 0, len(ids))
	for _, id := range ids {
		if item, ok := m[id]; ok {
			ordered = append(ordered, item)
		}
	}
	return ordered
}
