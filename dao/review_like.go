package dao

import (
	"context"
	"errors"

	"Globetrek/models"

	"gorm.io/gorm"
)

type ReviewLikeDAO struct {
	Repo[models.ReviewLike]
}

func NewReviewLikeDAO(db *gorm.DB) *ReviewLikeDAO {
	return &ReviewLikeDAO{Repo: NewRepo[models.ReviewLike](db)}
}

// GetByUserReview 用 (user_id, review_id) 组合键直查点赞记录，未命中返回 nil
func (d *ReviewLikeDAO) GetByUserReview(ctx context.Context, userID, reviewID uint64) (*models.ReviewLike, error) {
	var item models.ReviewLike
	err := d.Db.WithContext(ctx).Where("user_id = ? AND review_id = ?", userID, reviewID).Limit(1).Find(&item).Error
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

// IsLiked 是否已点赞
func (d *ReviewLikeDAO) IsLiked(ctx context.Context, userID, reviewID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND review_id = ?", userID, reviewID)
}

// ListReviewIDsByUser 用户点赞过的点评ID，按点赞时间倒序
func (d *ReviewLikeDAO) ListReviewIDsByUser(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.ReviewLike{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("review_id", &ids).Error
	return ids, err
}
