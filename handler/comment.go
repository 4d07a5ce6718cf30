package handler

import (
	"net/http"

	"Globetrek/config"
	"Globetrek/dao"
	"Globetrek/middleware"
	"Globetrek/pkg/context"
	"Globetrek/pkg/response"
	"Globetrek/service"
	"Globetrek/types"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Config         *config.Config
	Users          *dao.Users
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	identify := middleware.CurrentUser(h.Users)

	comments := r.Group("/comments")
	comments.POST("/:reviewId/new", authorize, identify, context.Wrap(h.Create))
	comments.GET("/all", context.Wrap(h.All))
	comments.GET("/by-review/:id", context.Wrap(h.ByReview))
	comments.GET("/:id", context.Wrap(h.Get))
	comments.DELETE("/delete/:id", authorize, identify, context.Wrap(h.Delete))
}

func (h *Comment) Create(c *gin.Context) error {
	reviewID, err := parseID(c, "reviewId")
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	comment, err := h.CommentService.Create(c.Request.Context(), user.ID, reviewID, req.Body)
	if err != nil {
		return httpError(err)
	}

	response.Created(c, comment)
	return nil
}

func (h *Comment) All(c *gin.Context) error {
	comments, err := h.CommentService.All(c.Request.Context())
	if err != nil {
		return httpError(err)
	}

	response.Success(c, comments)
	return nil
}

func (h *Comment) ByReview(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.CommentService.ByReview(c.Request.Context(), id)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, comments)
	return nil
}

func (h *Comment) Get(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	comment, err := h.CommentService.Get(c.Request.Context(), id)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, comment)
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	comment, err := h.CommentService.Delete(c.Request.Context(), user, id)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, comment)
	return nil
}
