package venue

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

// VenueController handles venue-related HTTP requests
type VenueController struct {
	repo VenueRepository
}

// NewVenueController creates a new venue controller
func NewVenueController(repo VenueRepository) *VenueController {
	return &VenueController{repo: repo}
}

// CreateVenue godoc
// @Summary Create a new venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body VenueInput true "Venue information"
// @Success 201 {object} responses.SuccessResponse{data=Venue} "Venue created successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /venues [post]
// @Security BearerAuth
func (c *VenueController) CreateVenue(ctx *gin.Context) {
	var input VenueInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.SendError(ctx, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	venue := &Venue{
		Name:    input.Name,
		Covered: input.Covered,
	}

	if err := c.repo.CreateVenue(ctx.Request.Context(), venue); err != nil {
		c.fail(ctx, "create venue", err)
		return
	}

	responses.SendSuccess(ctx, http.StatusCreated, "Venue created successfully", venue)
}

// GetVenueByID godoc
// @Summary Get venue by ID
// @Tags venues
// @Produce json
// @Param venue_id path int true "Venue ID"
// @Success 200 {object} responses.SuccessResponse{data=Venue} "Venue details"
// @Failure 400 {object} responses.ErrorResponse "Invalid venue ID"
// @Failure 404 {object} responses.ErrorResponse "Venue not found"
// @Router /venues/{venue_id} [get]
func (c *VenueController) GetVenueByID(ctx *gin.Context) {
	venueID, err := common.ParseIDParam(ctx, "venue_id")
	if err != nil {
		responses.BadRequest(ctx, "invalid venue ID")
		return
	}

	venue, err := c.repo.GetVenueByID(ctx.Request.Context(), venueID)
	if err != nil {
		c.fail(ctx, "get venue", err)
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "Venue retrieved successfully", venue)
}

// GetAllVenues godoc
// @Summary Get all venues
// @Description Get a paginated list of all venues with optional filters
// @Tags venues
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Number of items per page (default: 10, max: 100)"
// @Param covered query boolean false "Filter by indoor/outdoor"
// @Param name query string false "Name contains"
// @Success 200 {object} responses.PaginatedResponse{data=[]Venue} "List of venues"
// @Router /venues [get]
func (c *VenueController) GetAllVenues(ctx *gin.Context) {
	page, limit := common.Pagination(ctx)

	filters := make(map[string]interface{})
	if covered := ctx.Query("covered"); covered != "" {
		value, err := strconv.ParseBool(covered)
		if err != nil {
			responses.BadRequest(ctx, "invalid covered parameter")
			return
		}
		filters["covered"] = value
	}
	if name := ctx.Query("name"); name != "" {
		filters["name"] = name
	}

	venues, total, err := c.repo.GetAllVenues(ctx.Request.Context(), page, limit, filters)
	if err != nil {
		c.fail(ctx, "list venues", err)
		return
	}

	responses.SendPaginated(ctx, http.StatusOK, "Venues retrieved successfully", venues, total, page, limit)
}

// UpdateVenue godoc
// @Summary Update venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue_id path int true "Venue ID"
// @Param venue body VenueInput true "Updated venue information"
// @Success 200 {object} responses.SuccessResponse{data=Venue} "Venue updated successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Venue not found"
// @Router /venues/{venue_id} [put]
// @Security BearerAuth
func (c *VenueController) UpdateVenue(ctx *gin.Context) {
	venueID, err := common.ParseIDParam(ctx, "venue_id")
	if err != nil {
		responses.BadRequest(ctx, "invalid venue ID")
		return
	}

	var input VenueInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.SendError(ctx, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	venue, err := c.repo.GetVenueByID(ctx.Request.Context(), venueID)
	if err != nil {
		c.fail(ctx, "get venue", err)
		return
	}

	venue.Name = input.Name
	venue.Covered = input.Covered

	if err := c.repo.UpdateVenue(ctx.Request.Context(), venue); err != nil {
		c.fail(ctx, "update venue", err)
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "Venue updated successfully", venue)
}

// DeleteVenue godoc
// @Summary Delete venue
// @Description Deletes the venue and every match scheduled at it
// @Tags venues
// @Param venue_id path int true "Venue ID"
// @Success 200 {object} responses.SuccessResponse "Venue deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Venue not found"
// @Router /venues/{venue_id} [delete]
// @Security BearerAuth
func (c *VenueController) DeleteVenue(ctx *gin.Context) {
	venueID, err := common.ParseIDParam(ctx, "venue_id")
	if err != nil {
		responses.BadRequest(ctx, "invalid venue ID")
		return
	}

	if err := c.repo.DeleteVenue(ctx.Request.Context(), venueID); err != nil {
		c.fail(ctx, "delete venue", err)
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "Venue deleted successfully", nil)
}

func (c *VenueController) fail(ctx *gin.Context, op string, err error) {
	if errors.Is(err, ErrVenueNotFound) {
		responses.NotFound(ctx, "Venue")
		return
	}
	slog.Error(op+" failed", slog.String("request_id", common.RequestID(ctx)), slog.Any("error", err))
	responses.InternalServerError(ctx)
}
