package referee

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRefereeRoutes(router *gin.RouterGroup, db *gorm.DB, guard ...gin.HandlerFunc) {
	refereeController := NewRefereeController(NewRefereeRepository(db))

	router.GET("/referees", refereeController.GetAllReferees)
	router.GET("/referees/:referee_id", refereeController.GetRefereeByID)

	adminRoutes := router.Group("/referees", guard...)
	{
		adminRoutes.POST("", refereeController.CreateReferee)
		adminRoutes.PUT("/:referee_id", refereeController.UpdateReferee)
		adminRoutes.DELETE("/:referee_id", refereeController.DeleteReferee)
	}
}
