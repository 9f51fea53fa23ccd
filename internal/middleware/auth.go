package middleware

import (
	"strings"

	"github.com/DhavalSuthar-24/matchday/internal/common"
	"github.com/DhavalSuthar-24/matchday/pkg/responses"
	"github.com/DhavalSuthar-24/matchday/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware accepts "Authorization: Bearer <access token>" for an
// existing user and stores the user ID under common.ContextUserIDKey.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Fields(authHeader)
		if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "bearer") {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		var exists int
		err = db.WithContext(c.Request.Context()).Table("users").Select("1").
			Where("id = ?", claims.UserID).Limit(1).Scan(&exists).Error
		if err != nil || exists == 0 {
			responses.Unauthorized(c, "User not found or inactive")
			return
		}

		c.Set(common.ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
