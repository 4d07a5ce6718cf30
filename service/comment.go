package service

import (
	"context"
	"errors"

	"Globetrek/dao"
	"Globetrek/models"
	"Globetrek/pkg/snowflake"

	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, authorID, reviewID uint64, body string) (*models.Comment, error)
	All(ctx context.Context) ([]*models.Comment, error)
	Get(ctx context.Context, id uint64) (*models.Comment, error)
	ByReview(ctx context.Context, reviewID uint64) ([]*models.Comment, error)
	Delete(ctx context.Context, actor *models.User, id uint64) (*models.Comment, error)
}

type CommentService struct {
	Comments *dao.CommentDAO
	Reviews  *dao.ReviewDAO
}

func (s *CommentService) Create(ctx context.Context, authorID, reviewID uint64, body string) (*models.Comment, error) {
	exist, err := s.Reviews.IsExist(ctx, "id = ?", reviewID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrNotFound
	}

	comment := &models.Comment{
		ID:       snowflake.GenID(),
		Body:     body,
		AuthorID: authorID,
		ReviewID: reviewID,
	}
	if err := s.Comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) All(ctx context.Context) ([]*models.Comment, error) {
	return s.Comments.FindAllWithAuthor(ctx)
}

func (s *CommentService) Get(ctx context.Context, id uint64) (*models.Comment, error) {
	comment, err := s.Comments.FindByIdWithAuthor(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ByReview(ctx context.Context, reviewID uint64) ([]*models.Comment, error) {
	return s.Comments.FindByReview(ctx, reviewID)
}

// Delete 作者本人或管理员可删，返回被删除的评论
func (s *CommentService) Delete(ctx context.Context, actor *models.User, id uint64) (*models.Comment, error) {
	comment, err := s.Comments.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if comment.AuthorID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	affected, err := s.Comments.DeleteById(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return comment, nil
}
