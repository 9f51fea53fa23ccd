// team/model.go
package team

import "github.com/DhavalSuthar-24/matchday/internal/models"

// Team is a squad entered in the competition. Its roster lives on the
// participant side (participants.team_id).
type Team struct {
	models.Model
	Name    string `json:"name" gorm:"size:25;not null;index"`
	Olympic bool   `json:"olympic" gorm:"not null;default:false"` // eligible for the olympic tier
}

func (Team) TableName() string {
	return "teams"
}

func (t Team) String() string {
	return t.Name
}

// TeamFilter narrows GetAllTeams. Nil fields are ignored.
type TeamFilter struct {
	Name    string
	Olympic *bool
}
