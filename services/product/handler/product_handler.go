package handler

import (
	"context"
	"errors"
	"net/http"

	"listing-service/internal/listingerrors"
	model "listing-service/internal/models"
	"listing-service/internal/validation"
	"listing-service/services/product/helpers"
	"listing-service/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	ListProducts(ctx context.Context) ([]model.ProductView, error)
	GetProduct(ctx context.Context, id int64) (model.ProductView, error)
}

type ProductServiceInterface interface {
	CreateProduct(ctx context.Context, caller *model.AuthContext, in model.ProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, caller *model.AuthContext, id int64, in model.ProductInput) (model.Product, error)
	DeleteProduct(ctx context.Context, caller *model.AuthContext, id int64) error
}

// MutationRecorder counts the outcome of every create, update and delete
type MutationRecorder interface {
	RecordMutation(operation string, err error)
}

type ProductHandler struct {
	catalog  CatalogServiceInterface
	products ProductServiceInterface
	recorder MutationRecorder
}

func NewProductHandler(catalog CatalogServiceInterface, products ProductServiceInterface, recorder MutationRecorder) *ProductHandler {
	return &ProductHandler{catalog: catalog, products: products, recorder: recorder}
}

// ListProductsHandler handles GET /products
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListProductsHandler", err, nil)
		return
	}

	if products == nil {
		products = []model.ProductView{}
	}

	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
	helpers.LogSuccess("ListProductsHandler", "products retrieved successfully", map[string]any{
		"count": len(products),
	})
}

// GetProductHandler handles GET /products/:id
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	id, err := helpers.ParseProductID(c)
	if err != nil {
		helpers.HandleServiceError(c, "GetProductHandler", err, map[string]any{"product_id": c.Param("id")})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		helpers.HandleServiceError(c, "GetProductHandler", err, map[string]any{"product_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, product, "product retrieved successfully")
	helpers.LogSuccess("GetProductHandler", "product retrieved successfully", map[string]any{
		"product_id": id,
		"bids":       len(product.Bids),
	})
}

// CreateProductHandler handles POST /products
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	caller := helpers.Caller(c)
	req := helpers.BindProductRequest(c, "CreateProductHandler")

	product, err := h.products.CreateProduct(c.Request.Context(), caller, req.ToInput())
	h.record("create", err)
	if err != nil {
		helpers.HandleServiceError(c, "CreateProductHandler", err, callerFields(caller, err))
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewProductResponse(product), "product created successfully")
	helpers.LogSuccess("CreateProductHandler", "product created successfully", map[string]any{
		"product_id": product.ID,
		"seller_id":  product.SellerID,
	})
}

// UpdateProductHandler handles PUT /products/:id
func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	caller := helpers.Caller(c)
	id, err := helpers.ParseMutationID(c)
	if err != nil {
		h.record("update", err)
		helpers.HandleServiceError(c, "UpdateProductHandler", err, map[string]any{"product_id": c.Param("id")})
		return
	}

	req := helpers.BindProductRequest(c, "UpdateProductHandler")

	product, err := h.products.UpdateProduct(c.Request.Context(), caller, id, req.ToInput())
	h.record("update", err)
	if err != nil {
		fields := callerFields(caller, err)
		fields["product_id"] = id
		helpers.HandleServiceError(c, "UpdateProductHandler", err, fields)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProductResponse(product), "product updated successfully")
	helpers.LogSuccess("UpdateProductHandler", "product updated successfully", map[string]any{
		"product_id": product.ID,
		"caller_id":  caller.ID,
	})
}

// DeleteProductHandler handles DELETE /products/:id
func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	caller := helpers.Caller(c)
	id, err := helpers.ParseMutationID(c)
	if err != nil {
		h.record("delete", err)
		helpers.HandleServiceError(c, "DeleteProductHandler", err, map[string]any{"product_id": c.Param("id")})
		return
	}

	err = h.products.DeleteProduct(c.Request.Context(), caller, id)
	h.record("delete", err)
	if err != nil {
		fields := callerFields(caller, err)
		fields["product_id"] = id
		helpers.HandleServiceError(c, "DeleteProductHandler", err, fields)
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteProductHandler", "product deleted successfully", map[string]any{
		"product_id": id,
		"caller_id":  caller.ID,
	})
}

func (h *ProductHandler) record(operation string, err error) {
	if h.recorder != nil {
		h.recorder.RecordMutation(operation, err)
	}
}

// callerFields builds the log context for a failed mutation
func callerFields(caller *model.AuthContext, err error) map[string]any {
	fields := map[string]any{"anonymous": caller == nil}
	if caller != nil {
		fields["caller_id"] = caller.ID
	}
	var vErr *listingerrors.ValidationError
	if errors.As(err, &vErr) {
		fields["missing_fields"] = validation.MissingFields(err)
	}
	return fields
}
