package service_test

import (
	"context"
	"testing"

	"Globetrek/dao"
	"Globetrek/models"
	"Globetrek/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentService(db *gorm.DB) *service.CommentService {
	return &service.CommentService{
		Comments: dao.NewCommentDAO(db),
		Reviews:  dao.NewReviewDAO(db),
	}
}

func TestCommentCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	admin := seedUser(t, db, models.RoleAdmin)
	user := seedUser(t, db, models.RoleMember)
	country := seedCountry(t, db, admin)
	review := seedReview(t, db, admin, country)

	comment, err := svc.Create(ctx, user.ID, review.ID, "Great write-up")
	require.NoError(t, err)
	assert.Equal(t, user.ID, comment.AuthorID)
	assert.Equal(t, review.ID, comment.ReviewID)

	_, err = svc.Create(ctx, user.ID, 90909, "orphan")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCommentDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	admin := seedUser(t, db, models.RoleAdmin)
	author := seedUser(t, db, models.RoleMember)
	stranger := seedUser(t, db, models.RoleMember)
	country := seedCountry(t, db, admin)
	review := seedReview(t, db, admin, country)
	comment := seedComment(t, db, author, review)

	// 路人不能删
	_, err := svc.Delete(ctx, stranger, comment.ID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	// 作者可删，返回被删的评论
	deleted, err := svc.Delete(ctx, author, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, comment.ID, deleted.ID)
	assert.Zero(t, count[models.Comment](t, db, "id = ?", comment.ID))

	_, err = svc.Delete(ctx, author, comment.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	// 管理员可删他人评论
	another := seedComment(t, db, author, review)
	_, err = svc.Delete(ctx, admin, another.ID)
	require.NoError(t, err)
}
