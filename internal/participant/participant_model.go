package participant

import (
	"fmt"

	"github.com/DhavalSuthar-24/matchday/internal/models"
	"github.com/DhavalSuthar-24/matchday/internal/team"
)

// Participant is a competitor. A participant belongs to at most one team;
// deleting the team leaves the participant unassigned.
type Participant struct {
	models.Model
	Name      string      `json:"name" gorm:"size:75;not null"`
	BirthDate models.Date `json:"birth_date" gorm:"type:date;not null"`
	Grade     string      `json:"grade" gorm:"size:5"`
	models.Contact
	TeamID *uint      `json:"team_id" gorm:"index"`
	Team   *team.Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

func (Participant) TableName() string {
	return "participants"
}

func (p Participant) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Grade)
}

type ParticipantFilter struct {
	TeamID *uint
	Name   string
}
