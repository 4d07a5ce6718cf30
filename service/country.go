package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"Globetrek/dao"
	"Globetrek/models"
	"Globetrek/pkg/snowflake"
	"Globetrek/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ ICountryService = (*CountryService)(nil)

type ICountryService interface {
	Create(ctx context.Context, ownerID uint64, req *types.CreateCountryRequest) (*models.Country, error)
	All(ctx context.Context) ([]*models.Country, error)
	Get(ctx context.Context, id uint64) (*models.Country, error)
	Update(ctx context.Context, actorID uint64, id uint64, req *types.UpdateCountryRequest) (*models.Country, error)
	Delete(ctx context.Context, id uint64) (*types.CascadeResult, error)
}

type CountryService struct {
	Countries *dao.CountryDAO
}

func (s *CountryService) Create(ctx context.Context, ownerID uint64, req *types.CreateCountryRequest) (*models.Country, error) {
	images, err := json.Marshal(req.Images)
	if err != nil {
		return nil, err
	}

	country := &models.Country{
		ID:      snowflake.GenID(),
		Name:    req.Name,
		Capital: req.Capital,
		Region:  req.Region,
		Images:  images,
		OwnerID: ownerID,
	}
	if err := s.Countries.Create(ctx, country); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return country, nil
}

func (s *CountryService) All(ctx context.Context) ([]*models.Country, error) {
	return s.Countries.FindAllWithReviews(ctx)
}

func (s *CountryService) Get(ctx context.Context, id uint64) (*models.Country, error) {
	country, err := s.Countries.FindByIdWithReviews(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return country, nil
}

// Update 编辑国家并追加审计记录 "User <id> at <UTC时间>"，审计只增不改
func (s *CountryService) Update(ctx context.Context, actorID uint64, id uint64, req *types.UpdateCountryRequest) (*models.Country, error) {
	country, err := s.Countries.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var trail []string
	if len(country.UpdatedBy) > 0 {
		if err := json.Unmarshal(country.UpdatedBy, &trail); err != nil {
			return nil, err
		}
	}
	trail = append(trail, fmt.Sprintf("User %d at %s", actorID, time.Now().UTC().Format(http.TimeFormat)))
	updatedBy, err := json.Marshal(trail)
	if err != nil {
		return nil, err
	}

	data := map[string]any{"updated_by": datatypes.JSON(updatedBy)}
	if req.Name != "" {
		data["name"] = req.Name
	}
	if req.Capital != "" {
		data["capital"] = req.Capital
	}
	if req.Region != "" {
		data["region"] = req.Region
	}
	if req.Images != nil {
		images, err := json.Marshal(req.Images)
		if err != nil {
			return nil, err
		}
		data["images"] = datatypes.JSON(images)
	}
	if err := s.Countries.UpdateById(ctx, id, data); err != nil {
		return nil, err
	}
	return s.Countries.FindById(ctx, id)
}

// Delete 级联删除国家: 收藏行、其下点评（连带评论与点赞）、国家本体，
// 单事务全有或全无，不允许留下指向已删国家的孤儿点评
func (s *CountryService) Delete(ctx context.Context, id uint64) (*types.CascadeResult, error) {
	counts := map[string]int64{}

	err := s.Countries.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("country_id = ?", id).Delete(&models.CountrySave{})
		if res.Error != nil {
			return res.Error
		}
		counts["saves"] = res.RowsAffected

		var reviewIDs []uint64
		if err := tx.Model(&models.Review{}).Where("country_id = ?", id).Pluck("id", &reviewIDs).Error; err != nil {
			return err
		}
		comments, likes, err := deleteReviewDependents(tx, reviewIDs)
		if err != nil {
			return err
		}
		counts["comments"] = comments
		counts["likes"] = likes

		res = tx.Where("country_id = ?", id).Delete(&models.Review{})
		if res.Error != nil {
			return res.Error
		}
		counts["reviews"] = res.RowsAffected

		res = tx.Where("id = ?", id).Delete(&models.Country{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		counts["countries"] = 1
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
