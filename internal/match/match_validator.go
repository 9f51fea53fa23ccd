package match

import (
	"context"
	"fmt"

	"github.com/DhavalSuthar-24/matchday/internal/discipline"
)

// ParticipantCounter reports how many persisted participants a team has.
type ParticipantCounter interface {
	CountByTeam(ctx context.Context, teamID uint) (int64, error)
}

// ProposedTeam is one association a caller intends to persist.
type ProposedTeam struct {
	TeamID   uint
	TeamName string
	Role     Role
}

// CompositionResult holds the violated rules in evaluation order. An empty
// list means the composition is valid.
type CompositionResult struct {
	Reasons []string `json:"reasons"`
}

func (r *CompositionResult) Valid() bool {
	return len(r.Reasons) == 0
}

// CompositionValidator checks a match's proposed team set against the bounds
// of its discipline. It keeps no state and writes nothing.
type CompositionValidator struct {
	counter ParticipantCounter
}

func NewCompositionValidator(counter ParticipantCounter) *CompositionValidator {
	return &CompositionValidator{counter: counter}
}

// Validate evaluates proposed against d. Rule violations are reported in the
// result; the returned error is only set when a participant count could not
// be read.
func (v *CompositionValidator) Validate(ctx context.Context, d *discipline.Discipline, proposed []ProposedTeam) (*CompositionResult, error) {
	result := &CompositionResult{Reasons: []string{}}
	if d == nil {
		result.Reasons = append(result.Reasons, "no discipline assigned")
		return result, nil
	}

	distinct := make([]ProposedTeam, 0, len(proposed))
	seen := make(map[uint]int, len(proposed))
	var repeated []ProposedTeam
	for _, p := range proposed {
		seen[p.TeamID]++
		switch seen[p.TeamID] {
		case 1:
			distinct = append(distinct, p)
		case 2:
			repeated = append(repeated, p)
		}
	}

	teamCount := len(distinct)
	if teamCount < d.MinTeams || teamCount > d.MaxTeams {
		result.Reasons = append(result.Reasons, fmt.Sprintf(
			"discipline %q requires between %d and %d teams, has %d",
			d.Name, d.MinTeams, d.MaxTeams, teamCount))
	}

	for _, p := range distinct {
		count, err := v.counter.CountByTeam(ctx, p.TeamID)
		if err != nil {
			return nil, fmt.Errorf("count participants of team %d: %w", p.TeamID, err)
		}
		if count < int64(d.MinParticipantsPerTeam) {
			result.Reasons = append(result.Reasons, fmt.Sprintf(
				"team %q has too few participants: %d < %d",
				p.TeamName, count, d.MinParticipantsPerTeam))
		}
	}

	for _, p := range repeated {
		result.Reasons = append(result.Reasons, fmt.Sprintf("team %q is listed more than once", p.TeamName))
	}

	return result, nil
}
