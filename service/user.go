package service

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"Globetrek/config"
	"Globetrek/dao"
	"Globetrek/dao/cache"
	"Globetrek/models"
	"Globetrek/pkg/encrypt"
	"Globetrek/pkg/jwt"
	"Globetrek/pkg/log"
	"Globetrek/pkg/snowflake"
	"Globetrek/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Signup(ctx context.Context, opt *types.SignupRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Profile(ctx context.Context, userID uint64) (*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)
	EditProfile(ctx context.Context, userID uint64, name string) (*models.User, error)
	DeleteAccount(ctx context.Context, userID uint64) (*types.CascadeResult, error)
	DeleteAdminAccount(ctx context.Context, user *models.User) (*types.CascadeResult, error)
}

type UserService struct {
	Users     *dao.Users
	Countries *dao.CountryDAO
	Config    *config.Config
	Cache     *cache.RelationCache
}

// Signup 注册用户，密码策略与哈希在服务端强制执行
func (s *UserService) Signup(ctx context.Context, opt *types.SignupRequest) (*models.User, error) {
	if !validPassword(opt.Password) {
		return nil, ErrWeakPassword
	}
	if s.Users.IsEmailExist(ctx, opt.Email) {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		ID:       snowflake.GenID(),
		Name:     opt.Name,
		Username: opt.Username,
		Email:    opt.Email,
		Password: encrypt.HashPassword(opt.Password),
		Role:     models.RoleMember,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login 登录处理，不区分邮箱不存在与密码错误
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		user.ID, user.Name, user.Email, user.Role,
		jwt.TokenTTL,
	)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Profile(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.Users.FindByIdWithRelations(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListAll(ctx context.Context) ([]*models.User, error) {
	return s.Users.FindAllWithRelations(ctx)
}

func (s *UserService) EditProfile(ctx context.Context, userID uint64, name string) (*models.User, error) {
	if err := s.Users.UpdateById(ctx, userID, map[string]any{"name": name}); err != nil {
		return nil, err
	}
	user, err := s.Users.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteAccount 注销账号。本人全部点评（连带其下评论与点赞）、
// 本人散落在他人点评下的评论、本人的点赞/收藏行、用户行，
// 在同一事务内删除，任何一步失败整体回滚
func (s *UserService) DeleteAccount(ctx context.Context, userID uint64) (*types.CascadeResult, error) {
	counts := map[string]int64{}

	err := s.Users.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reviewIDs []uint64
		if err := tx.Model(&models.Review{}).Where("author_id = ?", userID).Pluck("id", &reviewIDs).Error; err != nil {
			return err
		}

		comments, likes, err := deleteReviewDependents(tx, reviewIDs)
		if err != nil {
			return err
		}
		counts["comments"] = comments
		counts["likes"] = likes

		res := tx.Where("author_id = ?", userID).Delete(&models.Review{})
		if res.Error != nil {
			return res.Error
		}
		counts["reviews"] = res.RowsAffected

		res = tx.Where("author_id = ?", userID).Delete(&models.Comment{})
		if res.Error != nil {
			return res.Error
		}
		counts["comments"] += res.RowsAffected

		res = tx.Where("user_id = ?", userID).Delete(&models.ReviewLike{})
		if res.Error != nil {
			return res.Error
		}
		counts["likes"] += res.RowsAffected

		res = tx.Where("user_id = ?", userID).Delete(&models.CountrySave{})
		if res.Error != nil {
			return res.Error
		}
		counts["saves"] = res.RowsAffected

		res = tx.Where("id = ?", userID).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		counts["users"] = 1
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrCascadeFailure, err)
	}

	if s.Cache != nil {
		if err := s.Cache.DropUser(ctx, userID); err != nil {
			log.L.Warn("drop relation cache failed", zap.Uint64("user_id", userID), zap.Error(err))
		}
	}
	return &types.CascadeResult{Deleted: counts}, nil
}

// DeleteAdminAccount 管理员注销。名下还有国家时拒绝并报数量
func (s *UserService) DeleteAdminAccount(ctx context.Context, user *models.User) (*types.CascadeResult, error) {
	count, err := s.Countries.CountByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &CountryTransferError{Count: count}
	}
	return s.DeleteAccount(ctx, user.ID)
}

// validPassword 至少8位，含大小写字母、数字和特殊字符
func validPassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}
