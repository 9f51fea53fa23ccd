package participant

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/matchday/internal/common"
	"github.com/DhavalSuthar-24/matchday/internal/models"
	"github.com/DhavalSuthar-24/matchday/internal/team"
	"github.com/DhavalSuthar-24/matchday/pkg/responses"
	"github.com/DhavalSuthar-24/matchday/pkg/validator"
	"github.com/gin-gonic/gin"
)

// TeamLookup is the slice of the team repository the controller needs.
type TeamLookup interface {
	GetTeamByID(ctx context.Context, id uint) (*team.Team, error)
}

type ParticipantController struct {
	repo  ParticipantRepository
	teams TeamLookup
}

func NewParticipantController(repo ParticipantRepository, teams TeamLookup) *ParticipantController {
	return &ParticipantController{repo: repo, teams: teams}
}

type ParticipantRequest struct {
	Name      string `json:"name" binding:"required,max=75"`
	BirthDate string `json:"birth_date" binding:"required,datetime=2006-01-02"`
	Grade     string `json:"grade" binding:"max=5"`
	Phone     string `json:"phone" binding:"omitempty,numeric,max=9"`
	Email     string `json:"email" binding:"omitempty,email,max=75"`
	TeamID    *uint  `json:"team_id" binding:"omitempty,min=1"`
}

func (req ParticipantRequest) apply(p *Participant) error {
	birth, err := models.ParseDate(req.BirthDate)
	if err != nil {
		return err
	}
	if birth.After(time.Now()) {
		return errors.New("birth_date must not be in the future")
	}
	p.Name = req.Name
	p.BirthDate = birth
	p.Grade = req.Grade
	p.Phone = req.Phone
	p.Email = req.Email
	p.TeamID = req.TeamID
	p.Team = nil
	return nil
}

// CreateParticipant godoc
// @Summary Register a participant
// @Tags Participants
// @Accept json
// @Produce json
// @Param participant body ParticipantRequest true "Participant"
// @Success 201 {object} responses.SuccessResponse{data=Participant}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /participants [post]
// @Security BearerAuth
func (pc *ParticipantController) CreateParticipant(c *gin.Context) {
	var req ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	var p Participant
	if err := req.apply(&p); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	if !pc.teamExists(c, p.TeamID) {
		return
	}

	if err := pc.repo.CreateParticipant(c.Request.Context(), &p); err != nil {
		pc.fail(c, "create participant", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Participant created successfully", p)
}

// GetAllParticipants godoc
// @Summary List participants
// @Tags Participants
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Param team_id query int false "Only members of this team"
// @Param name query string false "Name contains"
// @Success 200 {object} responses.PaginatedResponse{data=[]Participant}
// @Router /participants [get]
func (pc *ParticipantController) GetAllParticipants(c *gin.Context) {
	teamID, err := common.OptionalIDQuery(c, "team_id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	pc.list(c, ParticipantFilter{TeamID: teamID, Name: c.Query("name")})
}

// GetTeamParticipants godoc
// @Summary List the members of a team
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Participant}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{team_id}/participants [get]
func (pc *ParticipantController) GetTeamParticipants(c *gin.Context) {
	teamID, err := common.ParseIDParam(c, "team_id")
	if err != nil {
		responses.BadRequest(c, "Invalid team ID format")
		return
	}
	if !pc.teamExists(c, &teamID) {
		return
	}
	pc.list(c, ParticipantFilter{TeamID: &teamID})
}

func (pc *ParticipantController) list(c *gin.Context, filter ParticipantFilter) {
	page, pageSize := common.Pagination(c)

	participants, total, err := pc.repo.GetAllParticipants(c.Request.Context(), page, pageSize, filter)
	if err != nil {
		pc.fail(c, "list participants", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Participants retrieved successfully", participants, total, page, pageSize)
}

// GetParticipantByID godoc
// @Summary Get a participant
// @Tags Participants
// @Produce json
// @Param participant_id path int true "Participant ID"
// @Success 200 {object} responses.SuccessResponse{data=Participant}
// @Failure 404 {object} responses.ErrorResponse "Participant not found"
// @Router /participants/{participant_id} [get]
func (pc *ParticipantController) GetParticipantByID(c *gin.Context) {
	id, err := common.ParseIDParam(c, "participant_id")
	if err != nil {
		responses.BadRequest(c, "Invalid participant ID format")
		return
	}

	p, err := pc.repo.GetParticipantByID(c.Request.Context(), id)
	if err != nil {
		pc.fail(c, "get participant", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Participant retrieved successfully", p)
}

// UpdateParticipant godoc
// @Summary Update a participant
// @Description Setting team_id moves the participant to that team; omitting it leaves the participant without a team.
// @Tags Participants
// @Accept json
// @Produce json
// @Param participant_id path int true "Participant ID"
// @Param participant body ParticipantRequest true "Participant"
// @Success 200 {object} responses.SuccessResponse{data=Participant}
// @Failure 404 {object} responses.ErrorResponse "Participant or team not found"
// @Router /participants/{participant_id} [put]
// @Security BearerAuth
func (pc *ParticipantController) UpdateParticipant(c *gin.Context) {
	id, err := common.ParseIDParam(c, "participant_id")
	if err != nil {
		responses.BadRequest(c, "Invalid participant ID format")
		return
	}
	var req ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	p, err := pc.repo.GetParticipantByID(c.Request.Context(), id)
	if err != nil {
		pc.fail(c, "get participant", err)
		return
	}
	if err := req.apply(p); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	if !pc.teamExists(c, p.TeamID) {
		return
	}

	if err := pc.repo.UpdateParticipant(c.Request.Context(), p); err != nil {
		pc.fail(c, "update participant", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Participant updated successfully", p)
}

// DeleteParticipant godoc
// @Summary Delete a participant
// @Tags Participants
// @Param participant_id path int true "Participant ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Participant not found"
// @Router /participants/{participant_id} [delete]
// @Security BearerAuth
func (pc *ParticipantController) DeleteParticipant(c *gin.Context) {
	id, err := common.ParseIDParam(c, "participant_id")
	if err != nil {
		responses.BadRequest(c, "Invalid participant ID format")
		return
	}
	if err := pc.repo.DeleteParticipant(c.Request.Context(), id); err != nil {
		pc.fail(c, "delete participant", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Participant deleted successfully", nil)
}

// teamExists writes the error response itself and reports whether the
// handler may continue. A nil id always passes.
func (pc *ParticipantController) teamExists(c *gin.Context, id *uint) bool {
	if id == nil {
		return true
	}
	if _, err := pc.teams.GetTeamByID(c.Request.Context(), *id); err != nil {
		pc.fail(c, "get team", err)
		return false
	}
	return true
}

func (pc *ParticipantController) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, ErrParticipantNotFound):
		responses.NotFound(c, "Participant")
	case errors.Is(err, team.ErrTeamNotFound):
		responses.NotFound(c, "Team")
	default:
		slog.Error(op+" failed", slog.String("request_id", common.RequestID(c)), slog.Any("error", err))
		responses.InternalServerError(c)
	}
}
