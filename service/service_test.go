package service_test

import (
	"fmt"
	"strings"
	"testing"

	"Globetrek/models"
	"Globetrek/pkg/database"
	"Globetrek/pkg/encrypt"
	"Globetrek/pkg/snowflake"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	id := snowflake.GenID()
	user := &models.User{
		ID:       id,
		Name:     fmt.Sprintf("user-%d", id),
		Username: fmt.Sprintf("username-%d", id),
		Email:    fmt.Sprintf("user-%d@example.com", id),
		Password: encrypt.HashPassword("Sup3r-secret"),
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCountry(t *testing.T, db *gorm.DB, owner *models.User) *models.Country {
	t.Helper()

	id := snowflake.GenID()
	country := &models.Country{
		ID:      id,
		Name:    fmt.Sprintf("country-%d", id),
		Capital: "Capital City",
		Region:  "Region",
		OwnerID: owner.ID,
	}
	require.NoError(t, db.Create(country).Error)
	return country
}

func seedReview(t *testing.T, db *gorm.DB, author *models.User, country *models.Country) *models.Review {
	t.Helper()

	review := &models.Review{
		ID:        snowflake.GenID(),
		Title:     "A trip to remember",
		Body:      "Long form impressions.",
		Rate:      4,
		AuthorID:  author.ID,
		CountryID: country.ID,
	}
	require.NoError(t, db.Create(review).Error)
	return review
}

func seedComment(t *testing.T, db *gorm.DB, author *models.User, review *models.Review) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		ID:       snowflake.GenID(),
		Body:     "Agreed!",
		AuthorID: author.ID,
		ReviewID: review.ID,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func seedLike(t *testing.T, db *gorm.DB, user *models.User, review *models.Review) *models.ReviewLike {
	t.Helper()

	like := &models.ReviewLike{
		ID:       snowflake.GenID(),
		UserID:   user.ID,
		ReviewID: review.ID,
	}
	require.NoError(t, db.Create(like).Error)
	return like
}

func seedSave(t *testing.T, db *gorm.DB, user *models.User, country *models.Country) *models.CountrySave {
	t.Helper()

	save := &models.CountrySave{
		ID:        snowflake.GenID(),
		UserID:    user.ID,
		CountryID: country.ID,
	}
	require.NoError(t, db.Create(save).Error)
	return save
}

func count[T any](t *testing.T, db *gorm.DB, where string, args ...any) int64 {
	t.Helper()

	var m T
	var n int64
	require.NoError(t, db.Model(&m).Where(where, args...).Count(&n).Error)
	return n
}
