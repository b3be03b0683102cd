// Package http exposes the order workflow over gin.
package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/Apurer/go-storefront-api/internal/domains/orders/adapters/http/mapper"
	ordersapp "github.com/Apurer/go-storefront-api/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
	sharederrors "github.com/Apurer/go-storefront-api/internal/shared/errors"
)

// IdentityHeader carries the authenticated username, set by the gateway in
// front of this service. Requests without it are rejected.
const IdentityHeader = "X-Auth-Username"

// OrderAPI wires HTTP transport with the order workflow.
type OrderAPI struct {
	service   ordersports.Service
	responder *sharederrors.ChainedResponder
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service, responder *sharederrors.ChainedResponder) OrderAPI {
	if responder == nil {
		responder = sharederrors.NewChainedResponder("", ProblemMapper)
	}
	return OrderAPI{service: service, responder: responder}
}

// Register mounts the order routes on the given group.
func (api OrderAPI) Register(group *gin.RouterGroup) {
	group.POST("/orders/self", api.CreateOrder)
	group.GET("/orders/self", api.ListOwnOrders)
	group.DELETE("/orders/self/:orderId", api.CancelOwnOrder)
	group.POST("/orders", api.AdminCreateOrder)
	group.GET("/orders", api.ListOrders)
	group.GET("/orders/:orderId", api.GetOrder)
	group.PUT("/orders/:orderId/status", api.UpdateOrderStatus)
	group.DELETE("/orders/:orderId", api.AdminDeleteOrder)
}

// Post /orders/self
// Place an order for the authenticated user
func (api OrderAPI) CreateOrder(c *gin.Context) {
	actor, ok := api.identity(c)
	if !ok {
		return
	}
	var payload ordermapper.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	order, err := api.service.PlaceOrder(c.Request.Context(), actor, payload.Products)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordermapper.FromDomainOrder(order))
}

// Get /orders/self
// List the authenticated user's orders
func (api OrderAPI) ListOwnOrders(c *gin.Context) {
	actor, ok := api.identity(c)
	if !ok {
		return
	}
	orders, err := api.service.ListByOwner(c.Request.Context(), actor)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrders(orders))
}

// Delete /orders/self/:orderId
// Cancel the authenticated user's own order within the cancellation window
func (api OrderAPI) CancelOwnOrder(c *gin.Context) {
	actor, ok := api.identity(c)
	if !ok {
		return
	}
	if err := api.service.CancelOwn(c.Request.Context(), c.Param("orderId"), actor); err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /orders
// Place an order on behalf of a user (administrators only)
func (api OrderAPI) AdminCreateOrder(c *gin.Context) {
	if !api.requireAdmin(c) {
		return
	}
	var payload ordermapper.AdminCreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	order, err := api.service.PlaceOrderFor(c.Request.Context(), payload.Username, payload.Products)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordermapper.FromDomainOrder(order))
}

// Get /orders
// List all orders (administrators only)
func (api OrderAPI) ListOrders(c *gin.Context) {
	if !api.requireAdmin(c) {
		return
	}
	orders, err := api.service.List(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrders(orders))
}

// Get /orders/:orderId
// Fetch a single order; owners see their own, administrators see any
func (api OrderAPI) GetOrder(c *gin.Context) {
	actor, ok := api.identity(c)
	if !ok {
		return
	}
	order, err := api.service.GetByID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	if order.Owner != actor {
		admin, err := api.service.IsAdmin(c.Request.Context(), actor)
		if err != nil {
			api.responder.RespondError(c, err)
			return
		}
		if !admin {
			api.responder.Respond(c, sharederrors.ErrUnauthorized.WithDetail("order belongs to another user"))
			return
		}
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrder(order))
}

// Put /orders/:orderId/status
// Overwrite the order status; owner or administrator
func (api OrderAPI) UpdateOrderStatus(c *gin.Context) {
	actor, ok := api.identity(c)
	if !ok {
		return
	}
	var payload ordermapper.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	order, err := api.service.UpdateStatus(c.Request.Context(), c.Param("orderId"), payload.Status, actor)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrder(order))
}

// Delete /orders/:orderId
// Delete any order (administrators only)
func (api OrderAPI) AdminDeleteOrder(c *gin.Context) {
	if !api.requireAdmin(c) {
		return
	}
	if err := api.service.Remove(c.Request.Context(), c.Param("orderId")); err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (api OrderAPI) identity(c *gin.Context) (string, bool) {
	actor := strings.TrimSpace(c.GetHeader(IdentityHeader))
	if actor == "" {
		api.responder.Respond(c, sharederrors.ErrUnauthorized.WithDetail("missing identity header"))
		return "", false
	}
	return actor, true
}

func (api OrderAPI) requireAdmin(c *gin.Context) bool {
	actor, ok := api.identity(c)
	if !ok {
		return false
	}
	admin, err := api.service.IsAdmin(c.Request.Context(), actor)
	if err != nil {
		api.responder.RespondError(c, err)
		return false
	}
	if !admin {
		api.responder.Respond(c, sharederrors.ErrForbidden.WithDetail("administrator role required"))
		return false
	}
	return true
}

// ProblemMapper translates order workflow errors into Problem Details.
func ProblemMapper(err error) (sharederrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, ordersports.ErrNotFound),
		errors.Is(err, ordersports.ErrProductNotFound),
		errors.Is(err, ordersports.ErrUserNotFound):
		return sharederrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, ordersapp.ErrNotOwner):
		return sharederrors.ErrUnauthorized.WithDetail(err.Error()), true
	case errors.Is(err, ordersapp.ErrCancelWindowExpired):
		return sharederrors.ErrBadRequest.WithDetail(err.Error()), true
	case errors.Is(err, ordersapp.ErrEmptyProductSet),
		errors.Is(err, ordersapp.ErrInvalidInput):
		return sharederrors.ErrBadRequest.WithDetail(err.Error()), true
	default:
		return sharederrors.ProblemDetail{}, false
	}
}
