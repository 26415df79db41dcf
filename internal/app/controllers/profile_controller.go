package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/app/services"
	"github.com/edaguler/scholarhub/internal/middleware"
)

// ProfileController handles student and teacher profile endpoints
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetStudentProfile retrieves a student profile by owning user
// @Summary Get student profile
// @Tags profiles
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.StudentProfile} "Profile retrieved"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Router /profiles/student/{userId} [get]
func (c *ProfileController) GetStudentProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	profile, err := c.profileService.GetStudentProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateStudentProfile applies a partial update to a student profile
// @Summary Update student profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body dto.UpdateStudentProfileRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.StudentProfile} "Profile updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Router /profiles/student/{userId} [put]
func (c *ProfileController) UpdateStudentProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	var req dto.UpdateStudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	profile, err := c.profileService.UpdateStudentProfile(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetTeacherProfile retrieves a teacher profile by owning user
// @Summary Get teacher profile
// @Tags profiles
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.TeacherProfile} "Profile retrieved"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Router /profiles/teacher/{userId} [get]
func (c *ProfileController) GetTeacherProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	profile, err := c.profileService.GetTeacherProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateTeacherProfile applies a partial update to a teacher profile
// @Summary Update teacher profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body dto.UpdateTeacherProfileRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.TeacherProfile} "Profile updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Router /profiles/teacher/{userId} [put]
func (c *ProfileController) UpdateTeacherProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	var req dto.UpdateTeacherProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	profile, err := c.profileService.UpdateTeacherProfile(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}
