package dao

import (
	"context"

	"Globetrek/models"

	"gorm.io/gorm"
)

type ReviewDAO struct {
	Repo[models.Review]
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{Repo: NewRepo[models.Review](db)}
}

// FindAllFull 点评列表，带作者、国家、评论
func (d *ReviewDAO) FindAllFull(ctx context.Context) ([]*models.Review, error) {
	var reviews []*models.Review
	err := d.Db.WithContext(ctx).
		Preload("Author").
		Preload("Country").
		Preload("Comments").
		Preload("Comments.Author").
		Find(&reviews).Error
	return reviews, err
}

// FindByIdFull 点评详情
func (d *ReviewDAO) FindByIdFull(ctx context.Context, id uint64) (*models.Review, error) {
	var review models.Review
	err := d.Db.WithContext(ctx).
		Preload("Author").
		Preload("Country").
		Preload("Comments").
		First(&review, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// FindByAuthor 指定用户写过的点评
func (d *ReviewDAO) FindByAuthor(ctx context.Context, authorID uint64) ([]*models.Review, error) {
	var reviews []*models.Review
	err := d.Db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Find(&reviews).Error
	return reviews, err
}

// FindByCountry 指定国家下的点评
func (d *ReviewDAO) FindByCountry(ctx context.Context, countryID uint64) ([]*models.Review, error) {
	var reviews []*models.Review
	err := d.Db.WithContext(ctx).
		Where("country_id = ?", countryID).
		Find(&reviews).Error
	return reviews, err
}

// FindByIDs 按点赞顺序还原点评列表用
func (d *ReviewDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Review, error) {
	if len(ids) == 0 {
		return []*models.Review{}, nil
	}
	var reviews []*models.Review
	err := d.Db.WithContext(ctx).
		Preload("Author").
		Where("id IN ?", ids).
		Find(&reviews).Error
	return reviews, err
}

// Count 点评总数
func (d *ReviewDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Review{}).Count(&count).Error
	return count, err
}

// Page 按创建时间倒序分页
func (d *ReviewDAO) Page(ctx context.Context, offset, limit int) ([]*models.Review, error) {
	var reviews []*models.Review
	err := d.Db.WithContext(ctx).
		Preload("Author").
		Preload("Country").
		Preload("Comments").
		Preload("Comments.Author").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}
