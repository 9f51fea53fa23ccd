package match

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/matchday/internal/discipline"
	"github.com/DhavalSuthar-24/matchday/internal/referee"
	"github.com/DhavalSuthar-24/matchday/internal/team"
	"github.com/DhavalSuthar-24/matchday/internal/venue"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidSchedule = errors.New("match must end after it starts")
	ErrInvalidRole     = errors.New("role must be home or away")
	ErrDuplicateTeam   = errors.New("team is already part of the match")
	ErrTeamNotInMatch  = errors.New("team is not part of the match")
)

// CompositionError is returned when a write is refused because the resulting
// team set breaks the discipline's rules. Reasons are shown to users as is.
type CompositionError struct {
	Reasons []string
}

func (e *CompositionError) Error() string {
	return "match composition is not valid: " + strings.Join(e.Reasons, "; ")
}

type DisciplineLookup interface {
	GetDisciplineByID(ctx context.Context, id uint) (*discipline.Discipline, error)
}

type VenueLookup interface {
	GetVenueByID(ctx context.Context, id uint) (*venue.Venue, error)
}

type RefereeLookup interface {
	GetRefereeByID(ctx context.Context, id uint) (*referee.Referee, error)
}

type TeamLookup interface {
	GetTeamsByIDs(ctx context.Context, ids []uint) (map[uint]team.Team, error)
}

// TeamEntry is one requested association.
type TeamEntry struct {
	TeamID uint `json:"team_id" binding:"required,min=1"`
	Role   Role `json:"role" binding:"required,oneof=home away"`
}

// MatchInput carries every writable field of a match, teams included.
type MatchInput struct {
	DisciplineID uint
	StartsAt     time.Time
	EndsAt       time.Time
	VenueID      uint
	RefereeID    *uint
	Teams        []TeamEntry
}

// DraftInput is an in-progress composition checked without saving.
type DraftInput struct {
	DisciplineID *uint
	Teams        []TeamEntry
}

// AuditEntry is the outcome of re-checking one persisted match.
type AuditEntry struct {
	Match  *Match
	Result *CompositionResult
}

type MatchService struct {
	repo        MatchRepository
	disciplines DisciplineLookup
	venues      VenueLookup
	referees    RefereeLookup
	teams       TeamLookup
	validator   *CompositionValidator
	workers     int
}

func NewMatchService(
	repo MatchRepository,
	disciplines DisciplineLookup,
	venues VenueLookup,
	referees RefereeLookup,
	teams TeamLookup,
	counter ParticipantCounter,
	auditWorkers int,
) *MatchService {
	if auditWorkers < 1 {
		auditWorkers = 1
	}
	return &MatchService{
		repo:        repo,
		disciplines: disciplines,
		venues:      venues,
		referees:    referees,
		teams:       teams,
		validator:   NewCompositionValidator(counter),
		workers:     auditWorkers,
	}
}

func (s *MatchService) Get(ctx context.Context, id uint) (*Match, error) {
	return s.repo.GetMatchByID(ctx, id)
}

func (s *MatchService) List(ctx context.Context, filter MatchFilter, page, pageSize int) ([]Match, int64, error) {
	return s.repo.GetMatches(ctx, filter, page, pageSize)
}

// Create validates the full composition and, only when it passes, stores the
// match with its teams in one transaction.
func (s *MatchService) Create(ctx context.Context, in MatchInput) (*Match, error) {
	d, err := s.checkFields(ctx, in)
	if err != nil {
		return nil, err
	}
	proposed, err := s.propose(ctx, in.Teams)
	if err != nil {
		return nil, err
	}
	if err := s.enforce(ctx, d, proposed); err != nil {
		return nil, err
	}

	m := &Match{
		DisciplineID: in.DisciplineID,
		StartsAt:     in.StartsAt.UTC(),
		EndsAt:       in.EndsAt.UTC(),
		VenueID:      in.VenueID,
		RefereeID:    in.RefereeID,
		Teams:        associations(0, proposed),
	}
	err = s.repo.WithTransaction(ctx, func(tx MatchRepository) error {
		return tx.CreateMatch(ctx, m)
	})
	if err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	return s.repo.GetMatchByID(ctx, m.ID)
}

// Update replaces every field of a match, including its team set.
func (s *MatchService) Update(ctx context.Context, id uint, in MatchInput) (*Match, error) {
	m, err := s.repo.GetMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d, err := s.checkFields(ctx, in)
	if err != nil {
		return nil, err
	}
	proposed, err := s.propose(ctx, in.Teams)
	if err != nil {
		return nil, err
	}
	if err := s.enforce(ctx, d, proposed); err != nil {
		return nil, err
	}

	m.DisciplineID = in.DisciplineID
	m.StartsAt = in.StartsAt.UTC()
	m.EndsAt = in.EndsAt.UTC()
	m.VenueID = in.VenueID
	m.RefereeID = in.RefereeID
	m.Discipline, m.Venue, m.Referee = nil, nil, nil
	teams := associations(m.ID, proposed)

	err = s.repo.WithTransaction(ctx, func(tx MatchRepository) error {
		if err := tx.UpdateMatch(ctx, m); err != nil {
			return err
		}
		return tx.ReplaceTeams(ctx, m.ID, teams)
	})
	if err != nil {
		return nil, fmt.Errorf("update match %d: %w", id, err)
	}
	return s.repo.GetMatchByID(ctx, id)
}

func (s *MatchService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteMatch(ctx, id)
}

// AddTeam appends one team to a persisted match after checking the whole
// resulting set.
func (s *MatchService) AddTeam(ctx context.Context, matchID uint, entry TeamEntry) (*Match, error) {
	if !entry.Role.Valid() {
		return nil, ErrInvalidRole
	}
	m, err := s.repo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	for _, mt := range m.Teams {
		if mt.TeamID == entry.TeamID {
			return nil, ErrDuplicateTeam
		}
	}

	entries := append(currentEntries(m), entry)
	proposed, err := s.propose(ctx, entries)
	if err != nil {
		return nil, err
	}
	if err := s.enforce(ctx, m.Discipline, proposed); err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(tx MatchRepository) error {
		return tx.AddTeamToMatch(ctx, &MatchTeam{MatchID: matchID, TeamID: entry.TeamID, Role: entry.Role})
	})
	if err != nil {
		return nil, fmt.Errorf("add team %d to match %d: %w", entry.TeamID, matchID, err)
	}
	return s.repo.GetMatchByID(ctx, matchID)
}

// UpdateTeamRole switches the side a team plays on.
func (s *MatchService) UpdateTeamRole(ctx context.Context, matchID, teamID uint, role Role) (*Match, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	m, err := s.repo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	entries := currentEntries(m)
	found := false
	for i := range entries {
		if entries[i].TeamID == teamID {
			entries[i].Role = role
			found = true
		}
	}
	if !found {
		return nil, ErrTeamNotInMatch
	}
	proposed, err := s.propose(ctx, entries)
	if err != nil {
		return nil, err
	}
	if err := s.enforce(ctx, m.Discipline, proposed); err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(tx MatchRepository) error {
		return tx.UpdateTeamRole(ctx, matchID, teamID, role)
	})
	if err != nil {
		return nil, fmt.Errorf("update role of team %d in match %d: %w", teamID, matchID, err)
	}
	return s.repo.GetMatchByID(ctx, matchID)
}

// RemoveTeam drops one team from a match if the remaining set is still valid.
func (s *MatchService) RemoveTeam(ctx context.Context, matchID, teamID uint) (*Match, error) {
	m, err := s.repo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	var remaining []TeamEntry
	found := false
	for _, e := range currentEntries(m) {
		if e.TeamID == teamID {
			found = true
			continue
		}
		remaining = append(remaining, e)
	}
	if !found {
		return nil, ErrTeamNotInMatch
	}
	proposed, err := s.propose(ctx, remaining)
	if err != nil {
		return nil, err
	}
	if err := s.enforce(ctx, m.Discipline, proposed); err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(tx MatchRepository) error {
		return tx.RemoveTeamFromMatch(ctx, matchID, teamID)
	})
	if err != nil {
		return nil, fmt.Errorf("remove team %d from match %d: %w", teamID, matchID, err)
	}
	return s.repo.GetMatchByID(ctx, matchID)
}

// Validate checks an in-progress composition without saving anything. A nil
// or zero discipline ID is evaluated as "no discipline assigned".
func (s *MatchService) Validate(ctx context.Context, in DraftInput) (*CompositionResult, error) {
	var d *discipline.Discipline
	if in.DisciplineID != nil && *in.DisciplineID != 0 {
		var err error
		if d, err = s.disciplines.GetDisciplineByID(ctx, *in.DisciplineID); err != nil {
			return nil, err
		}
	}
	proposed, err := s.propose(ctx, in.Teams)
	if err != nil {
		return nil, err
	}
	return s.validator.Validate(ctx, d, proposed)
}

// Revalidate re-checks a persisted match against the current bounds of its
// discipline and the current rosters of its teams.
func (s *MatchService) Revalidate(ctx context.Context, id uint) (*CompositionResult, error) {
	m, err := s.repo.GetMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.validator.Validate(ctx, m.Discipline, persisted(m))
}

// Audit re-checks every persisted match. Matches are validated concurrently,
// at most s.workers at a time; the first infrastructure error cancels the run.
func (s *MatchService) Audit(ctx context.Context) ([]AuditEntry, error) {
	ids, err := s.repo.ListMatchIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	entries := make([]AuditEntry, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, id := range ids {
		g.Go(func() error {
			m, err := s.repo.GetMatchByID(gctx, id)
			if errors.Is(err, ErrMatchNotFound) {
				// deleted while the audit was running
				return nil
			}
			if err != nil {
				return fmt.Errorf("load match %d: %w", id, err)
			}
			result, err := s.validator.Validate(gctx, m.Discipline, persisted(m))
			if err != nil {
				return fmt.Errorf("validate match %d: %w", id, err)
			}
			entries[i] = AuditEntry{Match: m, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := entries[:0]
	for _, e := range entries {
		if e.Match != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// checkFields verifies the schedule and the referenced records and returns
// the discipline whose bounds apply.
func (s *MatchService) checkFields(ctx context.Context, in MatchInput) (*discipline.Discipline, error) {
	if !in.EndsAt.After(in.StartsAt) {
		return nil, ErrInvalidSchedule
	}
	d, err := s.disciplines.GetDisciplineByID(ctx, in.DisciplineID)
	if err != nil {
		return nil, err
	}
	if _, err := s.venues.GetVenueByID(ctx, in.VenueID); err != nil {
		return nil, err
	}
	if in.RefereeID != nil {
		if _, err := s.referees.GetRefereeByID(ctx, *in.RefereeID); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// propose resolves team names and fails with team.ErrTeamNotFound when an
// entry references a missing team. Order and duplicates are preserved.
func (s *MatchService) propose(ctx context.Context, entries []TeamEntry) ([]ProposedTeam, error) {
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		if !e.Role.Valid() {
			return nil, ErrInvalidRole
		}
		ids = append(ids, e.TeamID)
	}
	known, err := s.teams.GetTeamsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}

	proposed := make([]ProposedTeam, 0, len(entries))
	for _, e := range entries {
		t, ok := known[e.TeamID]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", team.ErrTeamNotFound, e.TeamID)
		}
		proposed = append(proposed, ProposedTeam{TeamID: e.TeamID, TeamName: t.Name, Role: e.Role})
	}
	return proposed, nil
}

func (s *MatchService) enforce(ctx context.Context, d *discipline.Discipline, proposed []ProposedTeam) error {
	result, err := s.validator.Validate(ctx, d, proposed)
	if err != nil {
		return fmt.Errorf("validate composition: %w", err)
	}
	if !result.Valid() {
		return &CompositionError{Reasons: result.Reasons}
	}
	return nil
}

func currentEntries(m *Match) []TeamEntry {
	entries := make([]TeamEntry, 0, len(m.Teams))
	for _, mt := range m.Teams {
		entries = append(entries, TeamEntry{TeamID: mt.TeamID, Role: mt.Role})
	}
	return entries
}

func persisted(m *Match) []ProposedTeam {
	proposed := make([]ProposedTeam, 0, len(m.Teams))
	for _, mt := range m.Teams {
		p := ProposedTeam{TeamID: mt.TeamID, Role: mt.Role}
		if mt.Team != nil {
			p.TeamName = mt.Team.Name
		}
		proposed = append(proposed, p)
	}
	return proposed
}

func associations(matchID uint, proposed []ProposedTeam) []MatchTeam {
	teams := make([]MatchTeam, 0, len(proposed))
	for _, p := range proposed {
		teams = append(teams, MatchTeam{MatchID: matchID, TeamID: p.TeamID, Role: p.Role})
	}
	return teams
}
