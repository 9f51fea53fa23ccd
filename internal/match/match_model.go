package match

import (
	"fmt"
	"time"

	"github.com/DhavalSuthar-24/matchday/internal/discipline"
	"github.com/DhavalSuthar-24/matchday/internal/models"
	"github.com/DhavalSuthar-24/matchday/internal/referee"
	"github.com/DhavalSuthar-24/matchday/internal/team"
	"github.com/DhavalSuthar-24/matchday/internal/venue"
)

// Role is the side a team plays on in a match.
type Role string

const (
	RoleHome Role = "home"
	RoleAway Role = "away"
)

func (r Role) Valid() bool {
	return r == RoleHome || r == RoleAway
}

// Match is a scheduled occurrence of a discipline at a venue.
type Match struct {
	models.Model
	DisciplineID uint                   `json:"discipline_id" gorm:"not null;index"`
	Discipline   *discipline.Discipline `json:"discipline,omitempty" gorm:"foreignKey:DisciplineID;constraint:OnDelete:CASCADE"`
	StartsAt     time.Time              `json:"starts_at" gorm:"not null"`
	EndsAt       time.Time              `json:"ends_at" gorm:"not null;check:chk_matches_schedule,ends_at > starts_at"`
	VenueID      uint                   `json:"venue_id" gorm:"not null;index"`
	Venue        *venue.Venue           `json:"venue,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
	RefereeID    *uint                  `json:"referee_id" gorm:"index"`
	Referee      *referee.Referee       `json:"referee,omitempty" gorm:"foreignKey:RefereeID;constraint:OnDelete:SET NULL"`
	Teams        []MatchTeam            `json:"teams" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

func (Match) TableName() string {
	return "matches"
}

func (m Match) String() string {
	if m.Discipline == nil {
		return fmt.Sprintf("Match %d", m.ID)
	}
	return fmt.Sprintf("Match %d - %s", m.ID, m.Discipline.Name)
}

// MatchTeam links a team to a match. A team appears at most once per match.
type MatchTeam struct {
	models.Model
	MatchID uint       `json:"match_id" gorm:"not null;uniqueIndex:idx_match_team"`
	TeamID  uint       `json:"team_id" gorm:"not null;uniqueIndex:idx_match_team;index"`
	Team    *team.Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Role    Role       `json:"role" gorm:"type:varchar(4);not null;check:chk_match_teams_role,role IN ('home','away')"`
}

func (MatchTeam) TableName() string {
	return "match_teams"
}

func (mt MatchTeam) String() string {
	name := fmt.Sprintf("team %d", mt.TeamID)
	if mt.Team != nil {
		name = mt.Team.Name
	}
	return fmt.Sprintf("%s (%s)", name, mt.Role)
}

// MatchFilter narrows GetMatches. Nil fields are ignored.
type MatchFilter struct {
	DisciplineID *uint
	VenueID      *uint
	TeamID       *uint
}
