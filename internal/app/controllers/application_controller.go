package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/app/services"
	"github.com/edaguler/scholarhub/internal/middleware"
)

// ApplicationController handles application submission and review
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// List retrieves applications, optionally narrowed to one student
// @Summary List applications
// @Description With studentId returns that student's applications with listing details; without it returns every application for review.
// @Tags applications
// @Produce json
// @Param studentId query int false "Only applications from this student"
// @Success 200 {object} dto.APIResponse "Applications retrieved"
// @Router /applications [get]
func (c *ApplicationController) List(ctx *gin.Context) {
	if studentStr := ctx.Query("studentId"); studentStr != "" {
		studentID, err := strconv.ParseInt(studentStr, 10, 64)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID").
				WithField("studentId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}

		applications, err := c.applicationService.ListByStudent(ctx, studentID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications))
		return
	}

	applications, err := c.applicationService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications))
}

// Create submits an application
// @Summary Submit an application
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Application information"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Opportunity not found"
// @Router /applications [post]
func (c *ApplicationController) Create(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	app, err := c.applicationService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(app))
}

// UpdateStatus records a reviewer's decision
// @Summary Update application status
// @Description Moves a pending application to accepted, rejected or withdrawn. Decided applications cannot move again.
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Status updated"
// @Failure 400 {object} dto.APIResponse "Invalid status"
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Failure 409 {object} dto.APIResponse "Application already decided"
// @Router /applications/{id} [put]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	app, err := c.applicationService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(app))
}
