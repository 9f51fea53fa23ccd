package matchresponse

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// --- Structs for match JSON bodies ---

// Ref is a compact reference to a related record.
type Ref struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Team is one side of a match.
type Team struct {
	TeamID uint   `json:"team_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Match is the public shape of a match.
type Match struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"` // "Match <id> - <discipline>"
	Discipline      Ref       `json:"discipline"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Venue           Ref       `json:"venue"`
	Referee         *Ref      `json:"referee"`
	Teams           []Team    `json:"teams"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Validation is the outcome of checking one composition.
type Validation struct {
	MatchID *uint    `json:"match_id,omitempty"`
	Title   string   `json:"title,omitempty"`
	Valid   bool     `json:"valid"`
	Reasons []string `json:"reasons"`
}

// Audit summarizes a re-check of all persisted matches.
type Audit struct {
	Checked int          `json:"checked"`
	Invalid int          `json:"invalid"`
	Matches []Validation `json:"matches"`
}

type jsonValidationResponse struct {
	Status  string     `json:"status"` // "success"
	Message string     `json:"message"`
	Data    Validation `json:"data"`
}

// --- Public helpers ---

// Duration returns the whole minutes between start and end.
func Duration(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}

// NewValidation builds a Validation and never leaves Reasons nil.
func NewValidation(reasons []string) Validation {
	if reasons == nil {
		reasons = []string{}
	}
	return Validation{Valid: len(reasons) == 0, Reasons: reasons}
}

// NewAudit counts the invalid entries of checked.
func NewAudit(checked []Validation) Audit {
	audit := Audit{Checked: len(checked), Matches: checked}
	if audit.Matches == nil {
		audit.Matches = []Validation{}
	}
	for _, v := range checked {
		if !v.Valid {
			audit.Invalid++
		}
	}
	return audit
}

// ValidationResponse sends a 200 carrying the validation outcome. An invalid
// composition is a normal answer here, not an error.
func ValidationResponse(c *gin.Context, v Validation) {
	message := "Match composition is valid"
	if !v.Valid {
		message = "Match composition is not valid"
	}
	c.JSON(http.StatusOK, jsonValidationResponse{
		Status:  "success",
		Message: message,
		Data:    v,
	})
}
