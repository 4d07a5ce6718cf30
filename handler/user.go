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

type User struct {
	Config          *config.Config
	Users           *dao.Users
	UserService     service.IUserService
	RelationService service.IRelationService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	identify := middleware.CurrentUser(h.Users)

	users := r.Group("/users")
	users.POST("/signup", context.Wrap(h.Signup))
	users.POST("/login", context.Wrap(h.Login))
	users.GET("/all", authorize, identify, middleware.RequireAdmin(), context.Wrap(h.All))
	users.GET("/profile", authorize, identify, context.Wrap(h.Profile))
	users.GET("/saved-countries", authorize, identify, context.Wrap(h.SavedCountries))
	users.PATCH("/edit-profile", authorize, identify, context.Wrap(h.EditProfile))
	users.DELETE("/delete", authorize, identify, context.Wrap(h.Delete))
	users.DELETE("/admin/delete", authorize, identify, middleware.RequireAdmin(), context.Wrap(h.AdminDelete))
}

func (h *User) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := h.UserService.Signup(c.Request.Context(), &req)
	if err != nil {
		return httpError(err)
	}

	response.Created(c, user)
	return nil
}

func (h *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.UserService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, types.LoginResponse{User: user, Token: token})
	return nil
}

func (h *User) All(c *gin.Context) error {
	users, err := h.UserService.ListAll(c.Request.Context())
	if err != nil {
		return httpError(err)
	}

	response.Success(c, users)
	return nil
}

func (h *User) Profile(c *gin.Context) error {
	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	profile, err := h.UserService.Profile(c.Request.Context(), user.ID)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, profile)
	return nil
}

func (h *User) SavedCountries(c *gin.Context) error {
	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	countries, err := h.RelationService.ListSavedCountries(c.Request.Context(), user.ID)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, countries)
	return nil
}

func (h *User) EditProfile(c *gin.Context) error {
	var req types.EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	updated, err := h.UserService.EditProfile(c.Request.Context(), user.ID, req.Name)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, updated)
	return nil
}

func (h *User) Delete(c *gin.Context) error {
	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	result, err := h.UserService.DeleteAccount(c.Request.Context(), user.ID)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, result)
	return nil
}

func (h *User) AdminDelete(c *gin.Context) error {
	user, err := context.GetCurrentUser(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	result, err := h.UserService.DeleteAdminAccount(c.Request.Context(), user)
	if err != nil {
		return httpError(err)
	}

	response.Success(c, result)
	return nil
}
