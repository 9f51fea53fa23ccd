package referee

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DhavalSuthar-24/matchday/internal/common"
	"github.com/DhavalSuthar-24/matchday/pkg/responses"
	"github.com/DhavalSuthar-24/matchday/pkg/validator"
	"github.com/gin-gonic/gin"
)

type RefereeController struct {
	repo RefereeRepository
}

func NewRefereeController(repo RefereeRepository) *RefereeController {
	return &RefereeController{repo: repo}
}

type RefereeRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Phone string `json:"phone" binding:"omitempty,numeric,max=9"`
	Email string `json:"email" binding:"omitempty,email,max=75"`
}

// CreateReferee godoc
// @Summary Create a referee
// @Tags Referees
// @Accept json
// @Produce json
// @Param referee body RefereeRequest true "Referee"
// @Success 201 {object} responses.SuccessResponse{data=Referee}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /referees [post]
// @Security BearerAuth
func (rc *RefereeController) CreateReferee(c *gin.Context) {
	var req RefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	ref := Referee{Name: req.Name}
	ref.Phone, ref.Email = req.Phone, req.Email
	if err := rc.repo.CreateReferee(c.Request.Context(), &ref); err != nil {
		rc.fail(c, "create referee", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Referee created successfully", ref)
}

// GetAllReferees godoc
// @Summary List referees
// @Tags Referees
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Param search query string false "Name contains"
// @Success 200 {object} responses.PaginatedResponse{data=[]Referee}
// @Router /referees [get]
func (rc *RefereeController) GetAllReferees(c *gin.Context) {
	page, pageSize := common.Pagination(c)
	referees, total, err := rc.repo.GetAllReferees(c.Request.Context(), page, pageSize, c.Query("search"))
	if err != nil {
		rc.fail(c, "list referees", err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Referees retrieved successfully", referees, total, page, pageSize)
}

// GetRefereeByID godoc
// @Summary Get a referee
// @Tags Referees
// @Produce json
// @Param referee_id path int true "Referee ID"
// @Success 200 {object} responses.SuccessResponse{data=Referee}
// @Failure 404 {object} responses.ErrorResponse "Referee not found"
// @Router /referees/{referee_id} [get]
func (rc *RefereeController) GetRefereeByID(c *gin.Context) {
	id, err := common.ParseIDParam(c, "referee_id")
	if err != nil {
		responses.BadRequest(c, "Invalid referee ID format")
		return
	}
	ref, err := rc.repo.GetRefereeByID(c.Request.Context(), id)
	if err != nil {
		rc.fail(c, "get referee", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Referee retrieved successfully", ref)
}

// UpdateReferee godoc
// @Summary Update a referee
// @Tags Referees
// @Accept json
// @Produce json
// @Param referee_id path int true "Referee ID"
// @Param referee body RefereeRequest true "Referee"
// @Success 200 {object} responses.SuccessResponse{data=Referee}
// @Failure 404 {object} responses.ErrorResponse "Referee not found"
// @Router /referees/{referee_id} [put]
// @Security BearerAuth
func (rc *RefereeController) UpdateReferee(c *gin.Context) {
	id, err := common.ParseIDParam(c, "referee_id")
	if err != nil {
		responses.BadRequest(c, "Invalid referee ID format")
		return
	}
	var req RefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	ref, err := rc.repo.GetRefereeByID(c.Request.Context(), id)
	if err != nil {
		rc.fail(c, "get referee", err)
		return
	}
	ref.Name, ref.Phone, ref.Email = req.Name, req.Phone, req.Email
	if err := rc.repo.UpdateReferee(c.Request.Context(), ref); err != nil {
		rc.fail(c, "update referee", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Referee updated successfully", ref)
}

// DeleteReferee godoc
// @Summary Delete a referee
// @Description Matches officiated by the referee are kept without one.
// @Tags Referees
// @Param referee_id path int true "Referee ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Referee not found"
// @Router /referees/{referee_id} [delete]
// @Security BearerAuth
func (rc *RefereeController) DeleteReferee(c *gin.Context) {
	id, err := common.ParseIDParam(c, "referee_id")
	if err != nil {
		responses.BadRequest(c, "Invalid referee ID format")
		return
	}
	if err := rc.repo.DeleteReferee(c.Request.Context(), id); err != nil {
		rc.fail(c, "delete referee", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Referee deleted successfully", nil)
}

func (rc *RefereeController) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, ErrRefereeNotFound) {
		responses.NotFound(c, "Referee")
		return
	}
	slog.Error(op+" failed", slog.String("request_id", common.RequestID(c)), slog.Any("error", err))
	responses.InternalServerError(c)
}
