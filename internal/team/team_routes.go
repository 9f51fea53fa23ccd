package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterTeamRoutes mounts /teams. Reads are public; guard protects mutations.
func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, guard ...gin.HandlerFunc) {
	teamController := NewTeamController(NewTeamRepository(db))

	// Public team routes
	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/teams/:team_id", teamController.GetTeamByID)

	adminRoutes := router.Group("/teams")
	adminRoutes.Use(guard...)
	{
		adminRoutes.POST("", teamController.CreateTeam)
		adminRoutes.PUT("/:team_id", teamController.UpdateTeam)
		adminRoutes.DELETE("/:team_id", teamController.DeleteTeam)
	}
}
