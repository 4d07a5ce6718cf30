package service_test

import (
	"context"
	"testing"

	"Globetrek/config"
	"Globetrek/dao"
	"Globetrek/models"
	"Globetrek/pkg/jwt"
	"Globetrek/service"
	"Globetrek/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *service.UserService {
	return &service.UserService{
		Users:     dao.NewUsers(db),
		Countries: dao.NewCountryDAO(db),
		Config:    &config.Config{Jwt: &config.Jwt{Secret: "test-secret"}},
	}
}

func TestSignupLoginRoundtrip(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user, err := svc.Signup(ctx, &types.SignupRequest{
		Name:     "Ada Lovelace",
		Username: "ada",
		Email:    "ada@example.com",
		Password: "S3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, user.Role)
	assert.NotEqual(t, "S3cret-pass", user.Password)

	logged, token, err := svc.Login(ctx, "ada@example.com", "S3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := jwt.ParseToken([]byte("test-secret"), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "Ada Lovelace", claims.Name)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, models.RoleMember, claims.Role)
}

func TestSignupWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "S3c-t"},
		{name: "no uppercase", password: "s3cret-pass"},
		{name: "no digit", password: "Secret-pass"},
		{name: "no special", password: "S3cretpass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, &types.SignupRequest{
				Name:     "Weak",
				Username: "weak",
				Email:    "weak@example.com",
				Password: tt.password,
			})
			assert.ErrorIs(t, err, service.ErrWeakPassword)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	req := &types.SignupRequest{
		Name:     "First",
		Username: "first",
		Email:    "dup@example.com",
		Password: "S3cret-pass",
	}
	_, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	req.Username = "second"
	_, err = svc.Signup(ctx, req)
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, models.RoleMember)

	// 邮箱不存在与密码错误对外是同一个错误
	_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, user.Email, "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestDeleteAccountCascade(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	admin := seedUser(t, db, models.RoleAdmin)
	victim := seedUser(t, db, models.RoleMember)
	other := seedUser(t, db, models.RoleMember)
	country := seedCountry(t, db, admin)

	// 本人的 3 条点评，点评下挂着他人的评论与点赞
	for i := 0; i < 3; i++ {
		review := seedReview(t, db, victim, country)
		seedComment(t, db, other, review)
		seedLike(t, db, other, review)
	}

	// 本人散落在他人点评下的痕迹
	othersReview := seedReview(t, db, other, country)
	seedComment(t, db, victim, othersReview)
	seedLike(t, db, victim, othersReview)
	seedSave(t, db, victim, country)

	result, err := svc.DeleteAccount(ctx, victim.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Deleted["reviews"])
	assert.Equal(t, int64(4), result.Deleted["comments"])
	assert.Equal(t, int64(4), result.Deleted["likes"])
	assert.Equal(t, int64(1), result.Deleted["saves"])
	assert.Equal(t, int64(1), result.Deleted["users"])

	// 与被删用户相关的行一条不留
	assert.Zero(t, count[models.User](t, db, "id = ?", victim.ID))
	assert.Zero(t, count[models.Review](t, db, "author_id = ?", victim.ID))
	assert.Zero(t, count[models.Comment](t, db, "author_id = ?", victim.ID))
	assert.Zero(t, count[models.ReviewLike](t, db, "user_id = ?", victim.ID))
	assert.Zero(t, count[models.CountrySave](t, db, "user_id = ?", victim.ID))

	// 他人的点评和数据不受波及
	assert.Equal(t, int64(1), count[models.Review](t, db, "id = ?", othersReview.ID))
	assert.Equal(t, int64(1), count[models.User](t, db, "id = ?", other.ID))
}

func TestDeleteAccountNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	_, err := svc.DeleteAccount(context.Background(), 987654)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestDeleteAdminAccountRefusedWithCountries(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	admin := seedUser(t, db, models.RoleAdmin)
	seedCountry(t, db, admin)
	seedCountry(t, db, admin)

	_, err := svc.DeleteAdminAccount(ctx, admin)
	var transferErr *service.CountryTransferError
	require.ErrorAs(t, err, &transferErr)
	assert.Equal(t, int64(2), transferErr.Count)

	// 拒绝时账号原样保留
	assert.Equal(t, int64(1), count[models.User](t, db, "id = ?", admin.ID))
}

func TestDeleteAdminAccountWithoutCountries(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	admin := seedUser(t, db, models.RoleAdmin)

	result, err := svc.DeleteAdminAccount(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Deleted["users"])
	assert.Zero(t, count[models.User](t, db, "id = ?", admin.ID))
}

func TestProfileAfterDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, models.RoleMember)

	_, err := svc.DeleteAccount(ctx, user.ID)
	require.NoError(t, err)

	_, err = svc.Profile(ctx, user.ID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestEditProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, models.RoleMember)

	updated, err := svc.EditProfile(ctx, user.ID, "New Name")
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}
