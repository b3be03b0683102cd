// Package http exposes the product catalog over gin.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogmapper "github.com/Apurer/go-storefront-api/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/Apurer/go-storefront-api/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-storefront-api/internal/domains/catalog/ports"
	sharederrors "github.com/Apurer/go-storefront-api/internal/shared/errors"
)

// ProductAPI wires HTTP transport with the catalog service.
type ProductAPI struct {
	service   catalogports.Service
	responder *sharederrors.ChainedResponder
}

// NewProductAPI creates a ProductAPI backed by the provided service.
func NewProductAPI(service catalogports.Service, responder *sharederrors.ChainedResponder) ProductAPI {
	if responder == nil {
		responder = sharederrors.NewChainedResponder("", ProblemMapper)
	}
	return ProductAPI{service: service, responder: responder}
}

// Register mounts the catalog routes on the given group.
func (api ProductAPI) Register(group *gin.RouterGroup) {
	group.POST("/products", api.CreateProduct)
	group.GET("/products", api.ListProducts)
	group.GET("/products/:key", api.GetProduct)
	group.PUT("/products/:key", api.UpdateProduct)
	group.DELETE("/products/:key", api.DeleteProduct)
}

// Post /products
// Add a product to the catalog
func (api ProductAPI) CreateProduct(c *gin.Context) {
	var payload catalogmapper.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	product, err := catalogmapper.ToDomainProduct(payload)
	if err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	saved, err := api.service.Create(c.Request.Context(), product)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, catalogmapper.FromDomainProduct(saved))
}

// Get /products
// List the catalog
func (api ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProducts(products))
}

// Get /products/:key
// Fetch a single product
func (api ProductAPI) GetProduct(c *gin.Context) {
	product, err := api.service.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProduct(product))
}

// Put /products/:key
// Apply a partial product update
func (api ProductAPI) UpdateProduct(c *gin.Context) {
	var payload catalogmapper.UpdateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	update, err := catalogmapper.ToProductUpdate(payload)
	if err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	product, err := api.service.Update(c.Request.Context(), c.Param("key"), update)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProduct(product))
}

// Delete /products/:key
// Remove a product from the catalog
func (api ProductAPI) DeleteProduct(c *gin.Context) {
	if err := api.service.Delete(c.Request.Context(), c.Param("key")); err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ProblemMapper translates catalog errors into Problem Details.
func ProblemMapper(err error) (sharederrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, catalogports.ErrNotFound):
		return sharederrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return sharederrors.ErrBadRequest.WithDetail(err.Error()), true
	default:
		return sharederrors.ProblemDetail{}, false
	}
}
