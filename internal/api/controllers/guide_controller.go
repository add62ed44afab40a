package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"trotter/internal/models/request_models"
	"trotter/internal/services"
	"trotter/pkg/utils"
)

type GuideController struct {
	guideService services.GuideServiceInterface
}

func NewGuideController(guideService services.GuideServiceInterface) *GuideController {
	return &GuideController{
		guideService: guideService,
	}
}

// GenerateGuide godoc
// @Summary Generate an AI city guide
// @Description Ask the configured model for a description, attractions, foods, activities and packing list for a city
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body request_models.GenerateGuideRequest true "Guide payload"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /guide/generate-guide [post]
func (g *GuideController) GenerateGuide(c *gin.Context) {
	var req request_models.GenerateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.City == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	guide, err := g.guideService.GenerateGuide(c.Request.Context(), req.City)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guide, "Guide generated successfully")
}
