// discipline/model.go
package discipline

import (
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/matchday/internal/models"
)

var ErrInvalidBounds = errors.New("invalid discipline bounds")

// Discipline is a sport or event type together with the composition bounds
// every match of it must respect.
type Discipline struct {
	models.Model
	Name                   string `json:"name" gorm:"size:50;not null;uniqueIndex"`
	MinTeams               int    `json:"min_teams" gorm:"not null;check:min_teams > 0"`
	MaxTeams               int    `json:"max_teams" gorm:"not null;check:max_teams >= min_teams"`
	MinParticipantsPerTeam int    `json:"min_participants_per_team" gorm:"not null;check:min_participants_per_team > 0"`
	// Stored for reference; composition checks only enforce the minimum.
	MaxParticipantsPerTeam int `json:"max_participants_per_team" gorm:"not null;check:max_participants_per_team >= min_participants_per_team"`
}

func (Discipline) TableName() string {
	return "disciplines"
}

func (d Discipline) String() string {
	return d.Name
}

// CheckBounds reports whether both min/max pairs are positive and ordered.
func (d Discipline) CheckBounds() error {
	switch {
	case d.MinTeams < 1 || d.MaxTeams < 1:
		return fmt.Errorf("%w: team bounds must be positive", ErrInvalidBounds)
	case d.MinTeams > d.MaxTeams:
		return fmt.Errorf("%w: min_teams %d exceeds max_teams %d", ErrInvalidBounds, d.MinTeams, d.MaxTeams)
	case d.MinParticipantsPerTeam < 1 || d.MaxParticipantsPerTeam < 1:
		return fmt.Errorf("%w: participant bounds must be positive", ErrInvalidBounds)
	case d.MinParticipantsPerTeam > d.MaxParticipantsPerTeam:
		return fmt.Errorf("%w: min_participants_per_team %d exceeds max_participants_per_team %d",
			ErrInvalidBounds, d.MinParticipantsPerTeam, d.MaxParticipantsPerTeam)
	}
	return nil
}
