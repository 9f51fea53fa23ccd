package team

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/matchday/internal/common"
	"github.com/DhavalSuthar-24/matchday/pkg/responses"
	"github.com/DhavalSuthar-24/matchday/pkg/validator"
	"github.com/gin-gonic/gin"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

type TeamRequest struct {
	Name    string `json:"name" binding:"required,max=25"`
	Olympic bool   `json:"olympic"`
}

// CreateTeam godoc
// @Summary Create a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body TeamRequest true "Team"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /teams [post]
// @Security BearerAuth
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	t := Team{Name: req.Name, Olympic: req.Olympic}
	if err := tc.repo.CreateTeam(c.Request.Context(), &t); err != nil {
		tc.fail(c, "create team", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", t)
}

// GetAllTeams godoc
// @Summary List teams
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Param name query string false "Name contains"
// @Param olympic query boolean false "Olympic tier only / non-olympic only"
// @Success 200 {object} responses.PaginatedResponse{data=[]Team}
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, pageSize := common.Pagination(c)

	filter := TeamFilter{Name: c.Query("name")}
	if raw := c.Query("olympic"); raw != "" {
		olympic, err := strconv.ParseBool(raw)
		if err != nil {
			responses.BadRequest(c, "invalid olympic parameter")
			return
		}
		filter.Olympic = &olympic
	}

	teams, total, err := tc.repo.GetAllTeams(c.Request.Context(), page, pageSize, filter)
	if err != nil {
		tc.fail(c, "list teams", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, pageSize)
}

// GetTeamByID godoc
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	id, err := common.ParseIDParam(c, "team_id")
	if err != nil {
		responses.BadRequest(c, "Invalid team ID format")
		return
	}

	t, err := tc.repo.GetTeamByID(c.Request.Context(), id)
	if err != nil {
		tc.fail(c, "get team", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", t)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param team body TeamRequest true "Team"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{team_id} [put]
// @Security BearerAuth
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	id, err := common.ParseIDParam(c, "team_id")
	if err != nil {
		responses.BadRequest(c, "Invalid team ID format")
		return
	}
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	t, err := tc.repo.GetTeamByID(c.Request.Context(), id)
	if err != nil {
		tc.fail(c, "get team", err)
		return
	}
	t.Name = req.Name
	t.Olympic = req.Olympic
	if err := tc.repo.UpdateTeam(c.Request.Context(), t); err != nil {
		tc.fail(c, "update team", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", t)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Participants of the team are kept without a team; the team's match associations are removed.
// @Tags Teams
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{team_id} [delete]
// @Security BearerAuth
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	id, err := common.ParseIDParam(c, "team_id")
	if err != nil {
		responses.BadRequest(c, "Invalid team ID format")
		return
	}
	if err := tc.repo.DeleteTeam(c.Request.Context(), id); err != nil {
		tc.fail(c, "delete team", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}

func (tc *TeamController) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, ErrTeamNotFound) {
		responses.NotFound(c, "Team")
		return
	}
	slog.Error(op+" failed", slog.String("request_id", common.RequestID(c)), slog.Any("error", err))
	responses.InternalServerError(c)
}
