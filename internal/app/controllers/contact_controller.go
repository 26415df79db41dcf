package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/app/services"
	"github.com/edaguler/scholarhub/internal/middleware"
)

// ContactController handles the public contact form
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// Submit stores a contact form message
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=models.ContactMessage} "Message stored"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /contact [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	msg, err := c.contactService.Submit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(msg))
}

// List retrieves stored messages, newest first
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ContactMessage} "Messages retrieved"
// @Router /contact [get]
func (c *ContactController) List(ctx *gin.Context) {
	messages, err := c.contactService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}
