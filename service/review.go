package service

import (
	"context"
	"errors"
	"fmt"

	"Globetrek/dao"
	"Globetrek/models"
	"Globetrek/pkg/snowflake"
	"Globetrek/types"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// 分页接口固定每页 6 条
const reviewPageSize = 6

var _ IReviewService = (*ReviewService)(nil)

type IReviewService interface {
	Create(ctx context.Context, authorID uint64, req *types.CreateReviewRequest) (*models.Review, error)
	All(ctx context.Context) ([]*models.Review, error)
	Get(ctx context.Context, id uint64) (*models.Review, error)
	ByCountry(ctx context.Context, countryID uint64) ([]*models.Review, error)
	Mine(ctx context.Context, authorID uint64) ([]*models.Review, error)
	Pagination(ctx context.Context) ([][]*models.Review, error)
	Update(ctx context.Context, actor *models.User, id uint64, req *types.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, actor *models.User, id uint64) (*types.CascadeResult, error)
}

type ReviewService struct {
	Reviews   *dao.ReviewDAO
	Countries *dao.CountryDAO
}

func (s *ReviewService) Create(ctx context.Context, authorID uint64, req *types.CreateReviewRequest) (*models.Review, error) {
	exist, err := s.Countries.IsExist(ctx, "id = ?", req.CountryID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrNotFound
	}

	review := &models.Review{
		ID:        snowflake.GenID(),
		Title:     req.Title,
		Body:      req.Body,
		Rate:      req.Rate,
		Image:     req.Image,
		AuthorID:  authorID,
		CountryID: req.CountryID,
	}
	if err := s.Reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) All(ctx context.Context) ([]*models.Review, error) {
	return s.Reviews.FindAllFull(ctx)
}

func (s *ReviewService) Get(ctx context.Context, id uint64) (*models.Review, error) {
	review, err := s.Reviews.FindByIdFull(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ByCountry(ctx context.Context, countryID uint64) ([]*models.Review, error) {
	return s.Reviews.FindByCountry(ctx, countryID)
}

func (s *ReviewService) Mine(ctx context.Context, authorID uint64) ([]*models.Review, error) {
	return s.Reviews.FindByAuthor(ctx, authorID)
}

// Pagination 一次取全量分页，页间并发拉取
func (s *ReviewService) Pagination(ctx context.Context) ([][]*models.Review, error) {
	count, err := s.Reviews.Count(ctx)
	if err != nil {
		return nil, err
	}
	pages := int((count + reviewPageSize - 1) / reviewPageSize)
	result := make([][]*models.Review, pages)

	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < pages; i++ {
		eg.Go(func() error {
			page, err := s.Reviews.Page(egCtx, i*reviewPageSize, reviewPageSize)
			if err != nil {
				return err
			}
			result[i] = page
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update 只有作者本人可以编辑
func (s *ReviewService) Update(ctx context.Context, actor *models.User, id uint64, req *types.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.Reviews.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if review.AuthorID != actor.ID {
		return nil, ErrForbidden
	}

	data := map[string]any{}
	if req.Title != "" {
		data["title"] = req.Title
	}
	if req.Body != "" {
		data["body"] = req.Body
	}
	if req.Rate != nil {
		data["rate"] = *req.Rate
	}
	if req.Image != "" {
		data["image"] = req.Image
	}
	if err := s.Reviews.UpdateById(ctx, id, data); err != nil {
		return nil, err
	}
	return s.Reviews.FindById(ctx, id)
}

// Delete 级联删除点评: 其下评论、其上点赞、点评本体，单事务全有或全无。
// 作者本人或管理员可删
func (s *ReviewService) Delete(ctx context.Context, actor *models.User, id uint64) (*types.CascadeResult, error) {
	review, err := s.Reviews.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if review.AuthorID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	counts := map[string]int64{}
	err = s.Reviews.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comments, likes, err := deleteReviewDependents(tx, []uint64{id})
		if err != nil {
			return err
		}
		counts["comments"] = comments
		counts["likes"] = likes

		res := tx.Where("id = ?", id).Delete(&models.Review{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		counts["reviews"] = 1
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrCascadeFailure, err)
	}
	return &types.CascadeResult{Deleted: counts}, nil
}

// deleteReviewDependents 删掉一批点评的从属记录（评论与点赞），
// 必须在外层事务内调用
func deleteReviewDependents(tx *gorm.DB, reviewIDs []uint64) (comments int64, likes int64, err error) {
	if len(reviewIDs) == 0 {
		return 0, 0, nil
	}

	res := tx.Where("review_id IN ?", reviewIDs).Delete(&models.Comment{})
	if res.Error != nil {
		return 0, 0, res.Error
	}
	comments = res.RowsAffected

	res = tx.Where("review_id IN ?", reviewIDs).Delete(&models.ReviewLike{})
	if res.Error != nil {
		return 0, 0, res.Error
	}
	likes = res.RowsAffected

	return comments, likes, nil
}
