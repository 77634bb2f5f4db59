package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"listing-service/internal/listingerrors"
	"listing-service/internal/models"
	"listing-service/utils"

	"github.com/gin-gonic/gin"
)

// CallerKey is the gin context key holding the resolved *models.AuthContext
const CallerKey = "listing.caller"

// SetCaller stores the resolved caller on the request context
func SetCaller(c *gin.Context, caller *models.AuthContext) {
	c.Set(CallerKey, caller)
}

// Caller returns the resolved caller, or nil for an anonymous request
func Caller(c *gin.Context) *models.AuthContext {
	v, ok := c.Get(CallerKey)
	if !ok {
		return nil
	}
	caller, _ := v.(*models.AuthContext)
	return caller
}

// ParseProductID reads the :id path parameter. Anything that is not a
// positive integer names no product.
func ParseProductID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("product id %q: %w", raw, listingerrors.ErrProductNotFound)
	}
	return id, nil
}

// ParseMutationID is ParseProductID for mutating routes, where an anonymous
// caller is rejected before the id is looked at
func ParseMutationID(c *gin.Context) (int64, error) {
	id, err := ParseProductID(c)
	if err != nil && Caller(c) == nil {
		return 0, fmt.Errorf("product id %q: %w", c.Param("id"), listingerrors.ErrUnauthenticated)
	}
	return id, err
}

// BindProductRequest decodes the request body. A body that cannot be decoded
// is treated as an empty payload and left to field validation.
func BindProductRequest(c *gin.Context, handlerName string) ProductRequest {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
		return ProductRequest{}
	}
	return req
}

// HandleServiceError sends the JSON error matching err and logs it
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()

	var vErr *listingerrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.JSONErrorWithDetails(c, status, listingerrors.ErrInvalidInput, message, vErr.Fields)
	case status == http.StatusInternalServerError:
		// store detail stays in the log
		utils.JSONError(c, status, errors.New(message), message)
	default:
		utils.JSONError(c, status, unwrapSentinel(err), message)
	}

	if status == http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, listingerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid or missing fields"
	case errors.Is(err, listingerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, listingerrors.ErrForbidden):
		return http.StatusForbidden, "not allowed to modify this product"
	case errors.Is(err, listingerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// unwrapSentinel keeps the client-facing error free of store and service
// context
func unwrapSentinel(err error) error {
	for _, sentinel := range []error{
		listingerrors.ErrUnauthenticated,
		listingerrors.ErrForbidden,
		listingerrors.ErrProductNotFound,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return err
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
