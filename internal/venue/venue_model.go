// venue/model.go
package venue

import "github.com/DhavalSuthar-24/matchday/internal/models"

// Venue is a place where matches are played.
type Venue struct {
	models.Model
	Name    string `json:"name" gorm:"size:25;not null"`
	Covered bool   `json:"covered" gorm:"not null;default:false"` // indoor when true
}

func (Venue) TableName() string {
	return "venues"
}

func (v Venue) String() string {
	return v.Name
}

// VenueInput is the create/update body.
type VenueInput struct {
	Name    string `json:"name" binding:"required,max=25"`
	Covered bool   `json:"covered"`
}
