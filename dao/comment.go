package dao

import (
	"context"

	"Globetrek/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// FindAllWithAuthor 评论列表，带作者和所属点评
func (d *CommentDAO) FindAllWithAuthor(ctx context.Context) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Preload("Author").
		Preload("Review").
		Find(&comments).Error
	return comments, err
}

// FindByIdWithAuthor 评论详情
func (d *CommentDAO) FindByIdWithAuthor(ctx context.Context, id uint64) (*models.Comment, error) {
	var comment models.Comment
	err := d.Db.WithContext(ctx).
		Preload("Author").
		Preload("Review").
		First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByReview 指定点评下的评论
func (d *CommentDAO) FindByReview(ctx context.Context, reviewID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Find(&comments).Error
	return comments, err
}
