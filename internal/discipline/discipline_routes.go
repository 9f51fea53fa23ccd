package discipline

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterDisciplineRoutes mounts /disciplines. Reads are public; guard
// protects every mutation.
func RegisterDisciplineRoutes(router *gin.RouterGroup, db *gorm.DB, guard ...gin.HandlerFunc) {
	disciplineController := NewDisciplineController(NewDisciplineRepository(db))

	publicDisciplines := router.Group("/disciplines")
	{
		publicDisciplines.GET("", disciplineController.GetAllDisciplines)
		publicDisciplines.GET("/:discipline_id", disciplineController.GetDisciplineByID)
	}

	adminDisciplines := router.Group("/disciplines")
	adminDisciplines.Use(guard...)
	{
		adminDisciplines.POST("", disciplineController.CreateDiscipline)
		adminDisciplines.PUT("/:discipline_id", disciplineController.UpdateDiscipline)
		adminDisciplines.DELETE("/:discipline_id", disciplineController.DeleteDiscipline)
	}
}
