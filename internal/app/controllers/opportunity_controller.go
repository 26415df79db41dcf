package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/app/services"
	"github.com/edaguler/scholarhub/internal/middleware"
)

// OpportunityController handles opportunity listing and lifecycle
type OpportunityController struct {
	opportunityService services.OpportunityService
}

// NewOpportunityController creates a new OpportunityController
func NewOpportunityController(opportunityService services.OpportunityService) *OpportunityController {
	return &OpportunityController{
		opportunityService: opportunityService,
	}
}

// List retrieves opportunities with optional filters
// @Summary List opportunities
// @Description Lists opportunities. teacherId wins over featured, which wins over q; no filters returns everything, featured first.
// @Tags opportunities
// @Produce json
// @Param q query string false "Search term matched against title, institution and description"
// @Param featured query bool false "Only promoted listings"
// @Param teacherId query int false "Only listings posted by this teacher"
// @Success 200 {object} dto.APIResponse{data=[]models.Opportunity} "Opportunities retrieved"
// @Router /opportunities [get]
func (c *OpportunityController) List(ctx *gin.Context) {
	filter := services.OpportunityFilter{
		Query:    ctx.Query("q"),
		Featured: ctx.Query("featured") == "true",
	}

	if teacherStr := ctx.Query("teacherId"); teacherStr != "" {
		teacherID, err := strconv.ParseInt(teacherStr, 10, 64)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher ID").
				WithField("teacherId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}
		filter.TeacherID = &teacherID
	}

	opportunities, err := c.opportunityService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(opportunities))
}

// GetByID retrieves a single opportunity
// @Summary Get opportunity details
// @Tags opportunities
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} dto.APIResponse{data=models.Opportunity} "Opportunity retrieved"
// @Failure 404 {object} dto.APIResponse "Opportunity not found"
// @Router /opportunities/{id} [get]
func (c *OpportunityController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	opp, err := c.opportunityService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(opp))
}

// Create stores a new listing
// @Summary Create an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Param request body dto.CreateOpportunityRequest true "Listing information"
// @Success 201 {object} dto.APIResponse{data=models.Opportunity} "Opportunity created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /opportunities [post]
func (c *OpportunityController) Create(ctx *gin.Context) {
	var req dto.CreateOpportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	opp, err := c.opportunityService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(opp))
}

// Update applies a partial update to a listing
// @Summary Update an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Param id path int true "Opportunity ID"
// @Param request body dto.UpdateOpportunityRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Opportunity} "Opportunity updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Opportunity not found"
// @Router /opportunities/{id} [put]
func (c *OpportunityController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateOpportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	opp, err := c.opportunityService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(opp))
}

// Delete removes a listing
// @Summary Delete an opportunity
// @Tags opportunities
// @Produce json
// @Param id path int true "Opportunity ID"
// @Success 200 {object} dto.APIResponse "Opportunity deleted"
// @Failure 404 {object} dto.APIResponse "Opportunity not found"
// @Failure 409 {object} dto.APIResponse "Opportunity has applications"
// @Router /opportunities/{id} [delete]
func (c *OpportunityController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.opportunityService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
