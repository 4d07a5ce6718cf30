package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"Globetrek/dao"
	"Globetrek/models"
	"Globetrek/service"
	"Globetrek/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCountryService(db *gorm.DB) *service.CountryService {
	return &service.CountryService{
		Countries: dao.NewCountryDAO(db),
	}
}

func TestCountryCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := newCountryService(db)
	ctx := context.Background()

	admin := seedUser(t, db, models.RoleAdmin)

	country, err := svc.Create(ctx, admin.ID, &types.CreateCountryRequest{
		Name:    "Japan",
		Capital: "Tokyo",
		Region:  "Asia",
		Images:  []string{"https://img.example.com/fuji.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, country.OwnerID)

	got, err := svc.Get(ctx, country.ID)
	require.NoError(t, err)
	assert.Equal(t, "Japan", got.Name)

	_, err = svc.Get(ctx, 424242)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCountryUpdateAuditTrail(t *testing.T) {
	db := newTestDB(t)
	svc := newCountryService(db)
	ctx := context.Background()

	admin := seedUser(t, db, models.RoleAdmin)
	second := seedUser(t, db, models.RoleAdmin)
	country := seedCountry(t, db, admin)

	updated, err := svc.Update(ctx, admin.ID, country.ID, &types.UpdateCountryRequest{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	updated, err = svc.Update(ctx, second.ID, country.ID, &types.UpdateCountryRequest{Capital: "New Capital"})
	require.NoError(t, err)

	// 审计记录只增不改，按编辑顺序排列
	var trail []string
	require.NoError(t, json.Unmarshal(updated.UpdatedBy, &trail))
	require.Len(t, trail, 2)
	assert.True(t, strings.HasPrefix(trail[0], fmt.Sprintf("User %d at ", admin.ID)))
	assert.True(t, strings.HasPrefix(trail[1], fmt.Sprintf("User %d at ", second.ID)))
}

func TestCountryUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCountryService(db)

	admin := seedUser(t, db, models.RoleAdmin)

	_, err := svc.Update(context.Background(), admin.ID, 55555, &types.UpdateCountryRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCountryCascadeDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newCountryService(db)
	ctx := context.Background()

	admin := seedUser(t, db, models.RoleAdmin)
	userA := seedUser(t, db, models.RoleMember)
	userB := seedUser(t, db, models.RoleMember)
	country := seedCountry(t, db, admin)

	first := seedReview(t, db, userA, country)
	second := seedReview(t, db, userB, country)
	seedComment(t, db, userB, first)
	seedLike(t, db, userB, first)
	seedLike(t, db, userA, second)
	seedSave(t, db, userA, country)
	seedSave(t, db, userB, country)

	result, err := svc.Delete(ctx, country.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Deleted["saves"])
	assert.Equal(t, int64(2), result.Deleted["reviews"])
	assert.Equal(t, int64(1), result.Deleted["comments"])
	assert.Equal(t, int64(2), result.Deleted["likes"])
	assert.Equal(t, int64(1), result.Deleted["countries"])

	// 不允许留下指向已删国家的孤儿记录
	assert.Zero(t, count[models.Country](t, db, "id = ?", country.ID))
	assert.Zero(t, count[models.Review](t, db, "country_id = ?", country.ID))
	assert.Zero(t, count[models.CountrySave](t, db, "country_id = ?", country.ID))
	assert.Zero(t, count[models.Comment](t, db, "review_id IN ?", []uint64{first.ID, second.ID}))
	assert.Zero(t, count[models.ReviewLike](t, db, "review_id IN ?", []uint64{first.ID, second.ID}))

	// 作者账号本身不动
	assert.Equal(t, int64(1), count[models.User](t, db, "id = ?", userA.ID))
}

func TestCountryDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCountryService(db)

	_, err := svc.Delete(context.Background(), 31337)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
