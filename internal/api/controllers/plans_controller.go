package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"trotter/internal/models/request_models"
	"trotter/internal/services"
	"trotter/pkg/utils"
)

type PlansController struct {
	planService services.PlanServiceInterface
}

func NewPlansController(planService services.PlanServiceInterface) *PlansController {
	return &PlansController{
		planService: planService,
	}
}

// CreatePlan godoc
// @Summary Create a travel plan
// @Description Persist a new travel plan for a user
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.CreatePlanRequest true "Plan payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans [post]
func (p *PlansController) CreatePlan(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Plan created successfully")
}

// GetPlans godoc
// @Summary List travel plans
// @Description Fetch all plans, or only one user's plans when userId is given
// @Tags Plans
// @Accept json
// @Produce json
// @Param userId query string false "Filter by owning user id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans [get]
func (p *PlansController) GetPlans(c *gin.Context) {
	userId := c.Query("userId")

	plans, err := p.planService.GetPlans(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// GetPlanById godoc
// @Summary Get a travel plan by ID
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{id} [get]
func (p *PlansController) GetPlanById(c *gin.Context) {
	planId := c.Param("id")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	plan, err := p.planService.GetPlanById(c.Request.Context(), planId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}
