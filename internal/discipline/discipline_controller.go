package discipline

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DhavalSuthar-24/matchday/internal/common"
	"github.com/DhavalSuthar-24/matchday/pkg/responses"
	"github.com/DhavalSuthar-24/matchday/pkg/validator"
	"github.com/gin-gonic/gin"
)

// DisciplineController handles API requests related to disciplines.
type DisciplineController struct {
	repo DisciplineRepository
}

// NewDisciplineController creates a new DisciplineController.
func NewDisciplineController(repo DisciplineRepository) *DisciplineController {
	return &DisciplineController{repo: repo}
}

// DisciplineRequest is the body for both create and full update.
type DisciplineRequest struct {
	Name                   string `json:"name" binding:"required,max=50"`
	MinTeams               int    `json:"min_teams" binding:"required,min=1"`
	MaxTeams               int    `json:"max_teams" binding:"required,gtefield=MinTeams"`
	MinParticipantsPerTeam int    `json:"min_participants_per_team" binding:"required,min=1"`
	MaxParticipantsPerTeam int    `json:"max_participants_per_team" binding:"required,gtefield=MinParticipantsPerTeam"`
}

func (req DisciplineRequest) apply(d *Discipline) {
	d.Name = req.Name
	d.MinTeams = req.MinTeams
	d.MaxTeams = req.MaxTeams
	d.MinParticipantsPerTeam = req.MinParticipantsPerTeam
	d.MaxParticipantsPerTeam = req.MaxParticipantsPerTeam
}

// CreateDiscipline godoc
// @Summary Create a discipline
// @Description Admin creates a discipline with its team and participant bounds
// @Tags Disciplines
// @Accept json
// @Produce json
// @Param discipline body DisciplineRequest true "Discipline"
// @Success 201 {object} responses.SuccessResponse{data=Discipline}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Name already used"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /disciplines [post]
// @Security BearerAuth
func (dc *DisciplineController) CreateDiscipline(c *gin.Context) {
	var req DisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	var d Discipline
	req.apply(&d)
	if err := d.CheckBounds(); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	if err := dc.repo.CreateDiscipline(c.Request.Context(), &d); err != nil {
		dc.fail(c, "create discipline", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Discipline created successfully", d)
}

// GetAllDisciplines godoc
// @Summary List disciplines
// @Tags Disciplines
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Param search query string false "Name contains"
// @Success 200 {object} responses.PaginatedResponse{data=[]Discipline}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /disciplines [get]
func (dc *DisciplineController) GetAllDisciplines(c *gin.Context) {
	page, pageSize := common.Pagination(c)

	disciplines, total, err := dc.repo.GetAllDisciplines(c.Request.Context(), page, pageSize, c.Query("search"))
	if err != nil {
		dc.fail(c, "list disciplines", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Disciplines retrieved successfully", disciplines, total, page, pageSize)
}

// GetDisciplineByID godoc
// @Summary Get a discipline
// @Tags Disciplines
// @Produce json
// @Param discipline_id path int true "Discipline ID"
// @Success 200 {object} responses.SuccessResponse{data=Discipline}
// @Failure 404 {object} responses.ErrorResponse "Discipline not found"
// @Router /disciplines/{discipline_id} [get]
func (dc *DisciplineController) GetDisciplineByID(c *gin.Context) {
	id, err := common.ParseIDParam(c, "discipline_id")
	if err != nil {
		responses.BadRequest(c, "Invalid discipline ID format")
		return
	}

	d, err := dc.repo.GetDisciplineByID(c.Request.Context(), id)
	if err != nil {
		dc.fail(c, "get discipline", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Discipline retrieved successfully", d)
}

// UpdateDiscipline godoc
// @Summary Update a discipline
// @Description Changing bounds does not touch existing matches; use the audit endpoint to re-check them.
// @Tags Disciplines
// @Accept json
// @Produce json
// @Param discipline_id path int true "Discipline ID"
// @Param discipline body DisciplineRequest true "Discipline"
// @Success 200 {object} responses.SuccessResponse{data=Discipline}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Discipline not found"
// @Failure 409 {object} responses.ErrorResponse "Name already used"
// @Router /disciplines/{discipline_id} [put]
// @Security BearerAuth
func (dc *DisciplineController) UpdateDiscipline(c *gin.Context) {
	id, err := common.ParseIDParam(c, "discipline_id")
	if err != nil {
		responses.BadRequest(c, "Invalid discipline ID format")
		return
	}

	var req DisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	d, err := dc.repo.GetDisciplineByID(c.Request.Context(), id)
	if err != nil {
		dc.fail(c, "get discipline", err)
		return
	}
	req.apply(d)
	if err := d.CheckBounds(); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	if err := dc.repo.UpdateDiscipline(c.Request.Context(), d); err != nil {
		dc.fail(c, "update discipline", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Discipline updated successfully", d)
}

// DeleteDiscipline godoc
// @Summary Delete a discipline
// @Description Deletes the discipline and every match scheduled for it.
// @Tags Disciplines
// @Param discipline_id path int true "Discipline ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Discipline not found"
// @Router /disciplines/{discipline_id} [delete]
// @Security BearerAuth
func (dc *DisciplineController) DeleteDiscipline(c *gin.Context) {
	id, err := common.ParseIDParam(c, "discipline_id")
	if err != nil {
		responses.BadRequest(c, "Invalid discipline ID format")
		return
	}

	if err := dc.repo.DeleteDiscipline(c.Request.Context(), id); err != nil {
		dc.fail(c, "delete discipline", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Discipline deleted successfully", nil)
}

func (dc *DisciplineController) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, ErrDisciplineNotFound):
		responses.NotFound(c, "Discipline")
	case errors.Is(err, ErrDisciplineNameConflict):
		responses.Conflict(c, "Discipline with this name already exists")
	default:
		slog.Error(op+" failed", slog.String("request_id", common.RequestID(c)), slog.Any("error", err))
		responses.InternalServerError(c)
	}
}
