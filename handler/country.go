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

type Country struct {
	Config          *config.Config
	Users           *dao.Users
	CountryService  service.ICountryService
	RelationService service.IRelationService
}

func (h *Country) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	identify := middleware.CurrentUser(h.Users)

	countries := r.Group("/countries")
	countries.POST("/new", authorize, identify, middleware.RequireAdmin(), context.Wrap(h.Create))
	countries.GET("/all", context.Wrap(h.All))
	countries.GET("/:id", context.Wrap(h.Get))
	countries.PATCH("/edit/:id", authorize, identify, middleware.RequireAdmin(), context.Wrap(h.Update))
	countries.PATCH("/:id/save", authorize, identify, context.Wrap(h.ToggleSave))
	countries.DELETE("/delete/:id", authorize, identify, middleware.RequireAdmin(), context.Wrap(h.Delete))
}

func (h *Country) Create(c *gin.Context) error {
	var req types.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	country, err := h.CountryService.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		return httpError(err)
	}

	response.Created(c, country)
	return nil
}

func (h *Country) All(c *gin.Context) error {
	countries, err := h.CountryService.All(c.Request.Context())
	if err != nil {
		return httpError(err)
	}

	response.Success(c, countries)
	return nil
}

func (h *Country) Get(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	country, err := h.CountryService.Get(c.Request.Context(), id)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, country)
	return nil
}

func (h *Country) Update(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	country, err := h.CountryService.Update(c.Request.Context(), user.ID, id, &req)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, country)
	return nil
}

// ToggleSave 收藏/取消收藏翻转，同一接口按当前状态决定动作
func (h *Country) ToggleSave(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	result, err := h.RelationService.ToggleSave(c.Request.Context(), user.ID, id)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, result)
	return nil
}

func (h *Country) Delete(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.CountryService.Delete(c.Request.Context(), id)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, result)
	return nil
}
