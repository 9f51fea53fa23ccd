package participant

import (
	"github.com/DhavalSuthar-24/matchday/internal/team"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterParticipantRoutes mounts /participants and the team roster
// listing under /teams/:team_id/participants.
func RegisterParticipantRoutes(router *gin.RouterGroup, db *gorm.DB, guard ...gin.HandlerFunc) {
	participantController := NewParticipantController(NewParticipantRepository(db), team.NewTeamRepository(db))

	router.GET("/participants", participantController.GetAllParticipants)
	router.GET("/participants/:participant_id", participantController.GetParticipantByID)
	router.GET("/teams/:team_id/participants", participantController.GetTeamParticipants)

	adminRoutes := router.Group("/participants")
	adminRoutes.Use(guard...)
	{
		adminRoutes.POST("", participantController.CreateParticipant)
		adminRoutes.PUT("/:participant_id", participantController.UpdateParticipant)
		adminRoutes.DELETE("/:participant_id", participantController.DeleteParticipant)
	}
}
