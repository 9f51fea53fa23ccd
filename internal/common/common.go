package common

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextUserIDKey    = "userID"     // Authenticated user ID
	ContextUserRolesKey = "user_roles" // Role names resolved by the role middleware
	ContextRequestIDKey = "request_id"

	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination reads page/pageSize query params, clamped to sane bounds.
func Pagination(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// ParseIDParam parses a positive uint path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}

// OptionalIDQuery parses an optional positive uint query parameter.
func OptionalIDQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	v := uint(id)
	return &v, nil
}

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userIDInterface, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, fmt.Errorf("user ID not found in context")
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userIDInterface)
	}
	return userID, nil
}

// RequestID returns the request ID assigned by the request-ID middleware.
func RequestID(c *gin.Context) string {
	return c.GetString(ContextRequestIDKey)
}
