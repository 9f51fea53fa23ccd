package rmiddleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DhavalSuthar-24/matchday/internal/common"
	"github.com/DhavalSuthar-24/matchday/pkg/responses"
	"github.com/gin-gonic/gin"
)

// RoleLookup resolves the role names held by a user.
type RoleLookup interface {
	GetUserRoles(ctx context.Context, userID uint) ([]string, error)
}

// RoleMiddleware lets the request through when the authenticated user holds
// any of requiredRoles. It must run after the auth middleware.
func RoleMiddleware(lookup RoleLookup, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := common.GetUserIDFromContext(c)
		if err != nil {
			responses.Unauthorized(c, "Unauthorized: "+err.Error())
			return
		}

		userRoles, err := lookup.GetUserRoles(c.Request.Context(), userID)
		if err != nil {
			slog.Error("load user roles failed", slog.String("request_id", common.RequestID(c)), slog.Any("error", err))
			responses.InternalServerError(c)
			return
		}

		if !hasAnyRole(userRoles, requiredRoles) {
			responses.Forbidden(c, "You don't have permission to access this resource")
			return
		}

		c.Set(common.ContextUserRolesKey, userRoles)
		c.Next()
	}
}

func hasAnyRole(userRoles, requiredRoles []string) bool {
	for _, userRole := range userRoles {
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(userRole, requiredRole) {
				return true
			}
		}
	}
	return false
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware(lookup RoleLookup) gin.HandlerFunc {
	return RoleMiddleware(lookup, "admin")
}
