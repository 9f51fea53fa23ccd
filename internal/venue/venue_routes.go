// venue/routes.go
package venue

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterVenueRoutes sets up venue routes
func RegisterVenueRoutes(r *gin.RouterGroup, db *gorm.DB, guard ...gin.HandlerFunc) {
	venueController := NewVenueController(NewVenueRepository(db))

	venueRoutes := r.Group("/venues")
	{
		// Public routes
		venueRoutes.GET("", venueController.GetAllVenues)
		venueRoutes.GET("/:venue_id", venueController.GetVenueByID)

		// Protected routes - require an admin
		authorized := venueRoutes.Group("")
		authorized.Use(guard...)
		{
			authorized.POST("", venueController.CreateVenue)
			authorized.PUT("/:venue_id", venueController.UpdateVenue)
			authorized.DELETE("/:venue_id", venueController.DeleteVenue)
		}
	}
}
