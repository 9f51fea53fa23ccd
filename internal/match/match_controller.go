package match

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/matchday/internal/common"
	"github.com/DhavalSuthar-24/matchday/internal/discipline"
	"github.com/DhavalSuthar-24/matchday/internal/referee"
	"github.com/DhavalSuthar-24/matchday/internal/team"
	"github.com/DhavalSuthar-24/matchday/internal/venue"
	"github.com/DhavalSuthar-24/matchday/pkg/matchresponse"
	"github.com/DhavalSuthar-24/matchday/pkg/responses"
	"github.com/DhavalSuthar-24/matchday/pkg/validator"
	"github.com/gin-gonic/gin"
)

// MatchController exposes the match service over HTTP.
type MatchController struct {
	service *MatchService
}

func NewMatchController(service *MatchService) *MatchController {
	return &MatchController{service: service}
}

// --- Request DTOs ---

type MatchRequest struct {
	DisciplineID uint        `json:"discipline_id" binding:"required,min=1"`
	StartsAt     time.Time   `json:"starts_at" binding:"required"`
	EndsAt       time.Time   `json:"ends_at" binding:"required,gtfield=StartsAt"`
	VenueID      uint        `json:"venue_id" binding:"required,min=1"`
	RefereeID    *uint       `json:"referee_id" binding:"omitempty,min=1"`
	Teams        []TeamEntry `json:"teams" binding:"dive"`
}

func (req MatchRequest) input() MatchInput {
	return MatchInput{
		DisciplineID: req.DisciplineID,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		VenueID:      req.VenueID,
		RefereeID:    req.RefereeID,
		Teams:        req.Teams,
	}
}

// ValidateRequest is an unsaved composition. discipline_id may be omitted.
type ValidateRequest struct {
	DisciplineID *uint       `json:"discipline_id"`
	Teams        []TeamEntry `json:"teams" binding:"dive"`
}

type RoleRequest struct {
	Role Role `json:"role" binding:"required,oneof=home away"`
}

// CreateMatch godoc
// @Summary Schedule a match
// @Description The match is stored only if its team set satisfies the discipline's bounds. Violations come back as a 422 with every reason.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body MatchRequest true "Match with its teams"
// @Success 201 {object} responses.SuccessResponse{data=matchresponse.Match}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 422 {object} responses.RejectedResponse "Composition rejected"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches [post]
// @Security BearerAuth
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	m, err := mc.service.Create(c.Request.Context(), req.input())
	if err != nil {
		mc.fail(c, "create match", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", toResponse(m))
}

// GetMatches godoc
// @Summary List matches
// @Tags Matches
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Param discipline_id query int false "Discipline filter"
// @Param venue_id query int false "Venue filter"
// @Param team_id query int false "Only matches this team plays in"
// @Success 200 {object} responses.PaginatedResponse{data=[]matchresponse.Match}
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, pageSize := common.Pagination(c)

	var filter MatchFilter
	for name, dst := range map[string]**uint{
		"discipline_id": &filter.DisciplineID,
		"venue_id":      &filter.VenueID,
		"team_id":       &filter.TeamID,
	} {
		id, err := common.OptionalIDQuery(c, name)
		if err != nil {
			responses.BadRequest(c, err.Error())
			return
		}
		*dst = id
	}

	matches, total, err := mc.service.List(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		mc.fail(c, "list matches", err)
		return
	}

	out := make([]matchresponse.Match, 0, len(matches))
	for i := range matches {
		out = append(out, toResponse(&matches[i]))
	}
	responses.SendPaginated(c, http.StatusOK, "Matches retrieved successfully", out, total, page, pageSize)
}

// GetMatchByID godoc
// @Summary Get a match
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=matchresponse.Match}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	m, err := mc.service.Get(c.Request.Context(), id)
	if err != nil {
		mc.fail(c, "get match", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", toResponse(m))
}

// UpdateMatch godoc
// @Summary Replace a match
// @Description Every field is replaced, teams included. The new team set is validated before anything is written.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param match body MatchRequest true "Match with its teams"
// @Success 200 {object} responses.SuccessResponse{data=matchresponse.Match}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 422 {object} responses.RejectedResponse "Composition rejected"
// @Router /matches/{id} [put]
// @Security BearerAuth
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	m, err := mc.service.Update(c.Request.Context(), id, req.input())
	if err != nil {
		mc.fail(c, "update match", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated successfully", toResponse(m))
}

// DeleteMatch godoc
// @Summary Delete a match
// @Tags Matches
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id} [delete]
// @Security BearerAuth
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	if err := mc.service.Delete(c.Request.Context(), id); err != nil {
		mc.fail(c, "delete match", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted successfully", nil)
}

// ValidateComposition godoc
// @Summary Check a composition without saving
// @Description Runs the same check as create/update over an in-progress team set. An invalid set is a 200 with valid=false.
// @Tags Matches
// @Accept json
// @Produce json
// @Param draft body ValidateRequest true "Discipline and teams"
// @Success 200 {object} matchresponse.Validation
// @Failure 422 {object} responses.ErrorResponse "Discipline or team not found"
// @Router /matches/validate [post]
// @Security BearerAuth
func (mc *MatchController) ValidateComposition(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	result, err := mc.service.Validate(c.Request.Context(), DraftInput{DisciplineID: req.DisciplineID, Teams: req.Teams})
	if err != nil {
		mc.fail(c, "validate composition", err)
		return
	}
	matchresponse.ValidationResponse(c, matchresponse.NewValidation(result.Reasons))
}

// RevalidateMatch godoc
// @Summary Re-check a saved match
// @Description Evaluates the match's current teams against the current bounds of its discipline.
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} matchresponse.Validation
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id}/validation [get]
func (mc *MatchController) RevalidateMatch(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	result, err := mc.service.Revalidate(c.Request.Context(), id)
	if err != nil {
		mc.fail(c, "revalidate match", err)
		return
	}
	v := matchresponse.NewValidation(result.Reasons)
	v.MatchID = &id
	matchresponse.ValidationResponse(c, v)
}

// AddTeam godoc
// @Summary Add a team to a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param team body TeamEntry true "Team and role"
// @Success 200 {object} responses.SuccessResponse{data=matchresponse.Match}
// @Failure 409 {object} responses.ErrorResponse "Team already in match"
// @Failure 422 {object} responses.RejectedResponse "Composition rejected"
// @Router /matches/{id}/teams [post]
// @Security BearerAuth
func (mc *MatchController) AddTeam(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	var req TeamEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	m, err := mc.service.AddTeam(c.Request.Context(), id, req)
	if err != nil {
		mc.fail(c, "add team to match", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team added to match", toResponse(m))
}

// UpdateTeamRole godoc
// @Summary Change a team's role in a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param team_id path int true "Team ID"
// @Param role body RoleRequest true "New role"
// @Success 200 {object} responses.SuccessResponse{data=matchresponse.Match}
// @Failure 404 {object} responses.ErrorResponse "Match or association not found"
// @Router /matches/{id}/teams/{team_id} [put]
// @Security BearerAuth
func (mc *MatchController) UpdateTeamRole(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	teamID, err := common.ParseIDParam(c, "team_id")
	if err != nil {
		responses.BadRequest(c, "Invalid team ID format")
		return
	}
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	m, err := mc.service.UpdateTeamRole(c.Request.Context(), id, teamID, req.Role)
	if err != nil {
		mc.fail(c, "update team role", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team role updated", toResponse(m))
}

// RemoveTeam godoc
// @Summary Remove a team from a match
// @Description Refused with 422 when the remaining teams would break the discipline's bounds.
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=matchresponse.Match}
// @Failure 404 {object} responses.ErrorResponse "Match or association not found"
// @Failure 422 {object} responses.RejectedResponse "Composition rejected"
// @Router /matches/{id}/teams/{team_id} [delete]
// @Security BearerAuth
func (mc *MatchController) RemoveTeam(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}
	teamID, err := common.ParseIDParam(c, "team_id")
	if err != nil {
		responses.BadRequest(c, "Invalid team ID format")
		return
	}

	m, err := mc.service.RemoveTeam(c.Request.Context(), id, teamID)
	if err != nil {
		mc.fail(c, "remove team from match", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team removed from match", toResponse(m))
}

// AuditMatches godoc
// @Summary Re-check every saved match
// @Description Useful after discipline bounds or team rosters changed.
// @Tags Admin
// @Produce json
// @Param invalid_only query boolean false "Only list matches that fail"
// @Success 200 {object} responses.SuccessResponse{data=matchresponse.Audit}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /admin/matches/audit [get]
// @Security BearerAuth
func (mc *MatchController) AuditMatches(c *gin.Context) {
	entries, err := mc.service.Audit(c.Request.Context())
	if err != nil {
		mc.fail(c, "audit matches", err)
		return
	}

	invalidOnly := c.Query("invalid_only") == "true"
	checked := make([]matchresponse.Validation, 0, len(entries))
	for _, e := range entries {
		v := matchresponse.NewValidation(e.Result.Reasons)
		id := e.Match.ID
		v.MatchID = &id
		v.Title = e.Match.String()
		checked = append(checked, v)
	}

	audit := matchresponse.NewAudit(checked)
	if invalidOnly {
		kept := audit.Matches[:0]
		for _, v := range audit.Matches {
			if !v.Valid {
				kept = append(kept, v)
			}
		}
		audit.Matches = kept
	}
	responses.SendSuccess(c, http.StatusOK, "Audit completed", audit)
}

func matchID(c *gin.Context) (uint, bool) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.BadRequest(c, "Invalid match ID format")
		return 0, false
	}
	return id, true
}

func (mc *MatchController) fail(c *gin.Context, op string, err error) {
	var composition *CompositionError
	switch {
	case errors.As(err, &composition):
		responses.SendRejected(c, composition.Reasons)
	case errors.Is(err, ErrMatchNotFound):
		responses.NotFound(c, "Match")
	case errors.Is(err, ErrTeamNotInMatch):
		responses.SendError(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, discipline.ErrDisciplineNotFound):
		responses.SendError(c, http.StatusUnprocessableEntity, "Discipline not found", nil)
	case errors.Is(err, venue.ErrVenueNotFound):
		responses.SendError(c, http.StatusUnprocessableEntity, "Venue not found", nil)
	case errors.Is(err, referee.ErrRefereeNotFound):
		responses.SendError(c, http.StatusUnprocessableEntity, "Referee not found", nil)
	case errors.Is(err, team.ErrTeamNotFound):
		responses.SendError(c, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, ErrInvalidSchedule), errors.Is(err, ErrInvalidRole):
		responses.BadRequest(c, err.Error())
	case errors.Is(err, ErrDuplicateTeam):
		responses.Conflict(c, err.Error())
	default:
		slog.Error(op+" failed", slog.String("request_id", common.RequestID(c)), slog.Any("error", err))
		responses.InternalServerError(c)
	}
}

func toResponse(m *Match) matchresponse.Match {
	out := matchresponse.Match{
		ID:              m.ID,
		Title:           m.String(),
		Discipline:      matchresponse.Ref{ID: m.DisciplineID},
		StartsAt:        m.StartsAt,
		EndsAt:          m.EndsAt,
		DurationMinutes: matchresponse.Duration(m.StartsAt, m.EndsAt),
		Venue:           matchresponse.Ref{ID: m.VenueID},
		Teams:           make([]matchresponse.Team, 0, len(m.Teams)),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Discipline != nil {
		out.Discipline.Name = m.Discipline.Name
	}
	if m.Venue != nil {
		out.Venue.Name = m.Venue.Name
	}
	if m.RefereeID != nil {
		out.Referee = &matchresponse.Ref{ID: *m.RefereeID}
		if m.Referee != nil {
			out.Referee.Name = m.Referee.Name
		}
	}
	for _, mt := range m.Teams {
		t := matchresponse.Team{TeamID: mt.TeamID, Role: string(mt.Role)}
		if mt.Team != nil {
			t.Name = mt.Team.Name
		}
		out.Teams = append(out.Teams, t)
	}
	return out
}
