package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/matchday/config"
	"github.com/DhavalSuthar-24/matchday/internal/auth"
	"github.com/DhavalSuthar-24/matchday/internal/discipline"
	"github.com/DhavalSuthar-24/matchday/internal/match"
	"github.com/DhavalSuthar-24/matchday/internal/middleware"
	"github.com/DhavalSuthar-24/matchday/internal/participant"
	"github.com/DhavalSuthar-24/matchday/internal/referee"
	"github.com/DhavalSuthar-24/matchday/internal/team"
	"github.com/DhavalSuthar-24/matchday/internal/venue"
	"github.com/DhavalSuthar-24/matchday/pkg/responses"
	"github.com/DhavalSuthar-24/matchday/pkg/rmiddleware"
)

func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", health(db))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authenticated := middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret, db)
	admin := rmiddleware.AdminMiddleware(auth.NewAuthRepository(db))
	guard := []gin.HandlerFunc{authenticated, admin}

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, cfg, authenticated, admin)
	discipline.RegisterDisciplineRoutes(api, db, guard...)
	team.RegisterTeamRoutes(api, db, guard...)
	participant.RegisterParticipantRoutes(api, db, guard...)
	venue.RegisterVenueRoutes(api, db, guard...)
	referee.RegisterRefereeRoutes(api, db, guard...)
	match.MatchRoutes(api, db, cfg.Audit.Workers, guard...)

	return r
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			responses.SendError(c, http.StatusServiceUnavailable, "Database unavailable", nil)
			return
		}
		responses.SendSuccess(c, http.StatusOK, "ok", gin.H{"database": "up"})
	}
}
