// Package http exposes the user directory over gin.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	usermapper "github.com/Apurer/go-storefront-api/internal/domains/users/adapters/http/mapper"
	usersapp "github.com/Apurer/go-storefront-api/internal/domains/users/application"
	usersports "github.com/Apurer/go-storefront-api/internal/domains/users/ports"
	sharederrors "github.com/Apurer/go-storefront-api/internal/shared/errors"
)

// UserAPI wires HTTP transport with the user directory service.
type UserAPI struct {
	service   usersports.Service
	responder *sharederrors.ChainedResponder
}

// NewUserAPI creates a UserAPI backed by the provided service.
func NewUserAPI(service usersports.Service, responder *sharederrors.ChainedResponder) UserAPI {
	if responder == nil {
		responder = sharederrors.NewChainedResponder("", ProblemMapper)
	}
	return UserAPI{service: service, responder: responder}
}

// Register mounts the user routes on the given group.
func (api UserAPI) Register(group *gin.RouterGroup) {
	group.POST("/users", api.RegisterUser)
	group.GET("/users", api.ListUsers)
	group.GET("/users/:username", api.GetUser)
	group.DELETE("/users/:username", api.DeleteUser)
}

// Post /users
// Register a new account
func (api UserAPI) RegisterUser(c *gin.Context) {
	var payload usermapper.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	user, err := api.service.Register(c.Request.Context(), usermapper.ToRegisterInput(payload))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usermapper.FromDomainUser(user))
}

// Get /users
// List all accounts
func (api UserAPI) ListUsers(c *gin.Context) {
	users, err := api.service.List(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUsers(users))
}

// Get /users/:username
// Fetch a single account
func (api UserAPI) GetUser(c *gin.Context) {
	user, err := api.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUser(user))
}

// Delete /users/:username
// Remove an account
func (api UserAPI) DeleteUser(c *gin.Context) {
	if err := api.service.Delete(c.Request.Context(), c.Param("username")); err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ProblemMapper translates user directory errors into Problem Details.
func ProblemMapper(err error) (sharederrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, usersports.ErrNotFound):
		return sharederrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, usersapp.ErrUsernameTaken),
		errors.Is(err, usersapp.ErrEmailTaken):
		return sharederrors.ErrConflict.WithDetail(err.Error()), true
	case errors.Is(err, usersapp.ErrInvalidInput):
		return sharederrors.ErrBadRequest.WithDetail(err.Error()), true
	default:
		return sharederrors.ProblemDetail{}, false
	}
}
