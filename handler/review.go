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

type Review struct {
	Config          *config.Config
	Users           *dao.Users
	ReviewService   service.IReviewService
	RelationService service.IRelationService
}

func (h *Review) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	identify := middleware.CurrentUser(h.Users)

	reviews := r.Group("/reviews")
	reviews.POST("/new", authorize, identify, context.Wrap(h.Create))
	reviews.GET("/all", context.Wrap(h.All))
	reviews.GET("/pagination", context.Wrap(h.Pagination))
	reviews.GET("/mine", authorize, identify, context.Wrap(h.Mine))
	reviews.GET("/liked", authorize, identify, context.Wrap(h.Liked))
	reviews.GET("/by-country/:id", context.Wrap(h.ByCountry))
	reviews.GET("/:id", context.Wrap(h.Get))
	reviews.PATCH("/edit/:id", authorize, identify, context.Wrap(h.Update))
	reviews.PATCH("/:id/like", authorize, identify, context.Wrap(h.ToggleLike))
	reviews.DELETE("/delete/:id", authorize, identify, context.Wrap(h.Delete))
}

func (h *Review) Create(c *gin.Context) error {
	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	review, err := h.ReviewService.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		return httpError(err)
	}

	response.Created(c, review)
	return nil
}

func (h *Review) All(c *gin.Context) error {
	reviews, err := h.ReviewService.All(c.Request.Context())
	if err != nil {
		return httpError(err)
	}

	response.Success(c, reviews)
	return nil
}

func (h *Review) Pagination(c *gin.Context) error {
	pages, err := h.ReviewService.Pagination(c.Request.Context())
	if err != nil {
		return httpError(err)
	}

	response.Success(c, pages)
	return nil
}

func (h *Review) Mine(c *gin.Context) error {
	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	reviews, err := h.ReviewService.Mine(c.Request.Context(), user.ID)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, reviews)
	return nil
}

func (h *Review) Liked(c *gin.Context) error {
	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	reviews, err := h.RelationService.ListLikedReviews(c.Request.Context(), user.ID)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, reviews)
	return nil
}

func (h *Review) ByCountry(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.ReviewService.ByCountry(c.Request.Context(), id)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, reviews)
	return nil
}

func (h *Review) Get(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.ReviewService.Get(c.Request.Context(), id)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, review)
	return nil
}

func (h *Review) Update(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	review, err := h.ReviewService.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, review)
	return nil
}

// ToggleLike 点赞/取消点赞翻转，同一接口按当前状态决定动作
func (h *Review) ToggleLike(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	result, err := h.RelationService.ToggleLike(c.Request.Context(), user.ID, id)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, result)
	return nil
}

func (h *Review) Delete(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	result, err := h.ReviewService.Delete(c.Request.Context(), user, id)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, result)
	return nil
}
