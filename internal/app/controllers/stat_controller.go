package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/app/services"
	"github.com/edaguler/scholarhub/internal/middleware"
)

// StatController serves the portal's headline numbers
type StatController struct {
	statService services.StatService
}

// NewStatController creates a new StatController
func NewStatController(statService services.StatService) *StatController {
	return &StatController{
		statService: statService,
	}
}

// List retrieves all success stats
// @Summary List success stats
// @Tags stats
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.SuccessStat} "Stats retrieved"
// @Router /stats [get]
func (c *StatController) List(ctx *gin.Context) {
	stats, err := c.statService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}
