package match

import (
	"github.com/DhavalSuthar-24/matchday/internal/discipline"
	"github.com/DhavalSuthar-24/matchday/internal/participant"
	"github.com/DhavalSuthar-24/matchday/internal/referee"
	"github.com/DhavalSuthar-24/matchday/internal/team"
	"github.com/DhavalSuthar-24/matchday/internal/venue"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewService wires a MatchService to the gorm repositories.
func NewService(db *gorm.DB, auditWorkers int) *MatchService {
	return NewMatchService(
		NewGormMatchRepository(db),
		discipline.NewDisciplineRepository(db),
		venue.NewVenueRepository(db),
		referee.NewRefereeRepository(db),
		team.NewTeamRepository(db),
		participant.NewParticipantRepository(db),
		auditWorkers,
	)
}

// MatchRoutes sets up all match-related routes.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, auditWorkers int, guard ...gin.HandlerFunc) {
	matchController := NewMatchController(NewService(db, auditWorkers))

	// Public routes
	publicRoutes := router.Group("/matches")
	{
		publicRoutes.GET("", matchController.GetMatches)
		publicRoutes.GET("/:id", matchController.GetMatchByID)
		publicRoutes.GET("/:id/validation", matchController.RevalidateMatch)
	}

	// Admin routes
	adminRoutes := router.Group("/matches")
	adminRoutes.Use(guard...)
	{
		adminRoutes.POST("", matchController.CreateMatch)
		adminRoutes.POST("/validate", matchController.ValidateComposition)
		adminRoutes.PUT("/:id", matchController.UpdateMatch)
		adminRoutes.DELETE("/:id", matchController.DeleteMatch)

		adminRoutes.POST("/:id/teams", matchController.AddTeam)
		adminRoutes.PUT("/:id/teams/:team_id", matchController.UpdateTeamRole)
		adminRoutes.DELETE("/:id/teams/:team_id", matchController.RemoveTeam)
	}

	audit := router.Group("/admin/matches")
	audit.Use(guard...)
	{
		audit.GET("/audit", matchController.AuditMatches)
	}
}
