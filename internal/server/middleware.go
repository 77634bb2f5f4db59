package server

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"listing-service/internal/listingerrors"
	"listing-service/internal/models"
	"listing-service/internal/repository"
	"listing-service/services/product/helpers"
	"listing-service/utils"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDHeader carries the user id asserted by the upstream gateway
	UserIDHeader = "X-User-ID"
	// RequestIDHeader correlates a request across log lines
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestIDMiddleware reuses the client's X-Request-ID or assigns a new one
func RequestIDMiddleware(c *gin.Context) {
	id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
	if id == "" || !utils.IsRequestID(id) {
		id = utils.GenerateRequestID()
	}
	c.Set(requestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	}
	if caller := helpers.Caller(c); caller != nil {
		fields["caller_id"] = caller.ID
	}
	utils.Info("HTTP Request", fields)
}

// AuthContextMiddleware resolves the X-User-ID header against the user store.
// Missing, malformed or unknown ids leave the request anonymous; any other
// store failure aborts with 500. The admin flag always comes from the stored
// user.
func AuthContextMiddleware(users repository.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if raw == "" {
			c.Next()
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			utils.Warn("AuthContextMiddleware: malformed user id", map[string]any{
				"user_id":    raw,
				"request_id": c.GetString(requestIDKey),
			})
			c.Next()
			return
		}

		user, err := users.FindUserByID(c.Request.Context(), id)
		if errors.Is(err, listingerrors.ErrUserNotFound) {
			utils.Warn("AuthContextMiddleware: unknown user id", map[string]any{
				"user_id":    id,
				"request_id": c.GetString(requestIDKey),
			})
			c.Next()
			return
		}
		if err != nil {
			helpers.HandleServiceError(c, "AuthContextMiddleware", fmt.Errorf("resolve caller %d: %w", id, err), map[string]any{
				"user_id":    id,
				"request_id": c.GetString(requestIDKey),
			})
			c.Abort()
			return
		}

		helpers.SetCaller(c, &models.AuthContext{ID: user.ID, IsAdmin: user.IsAdmin})
		c.Next()
	}
}
