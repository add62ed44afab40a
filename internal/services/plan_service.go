package services

import (
	"context"

	"github.com/google/uuid"
	"trotter/internal/models/db_models"
	"trotter/internal/models/request_models"
	"trotter/internal/repositories"
	"trotter/pkg/utils"
)

type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (*db_models.Plan, error)
	GetPlans(ctx context.Context, userId string) ([]db_models.Plan, error)
	GetPlanById(ctx context.Context, planId string) (*db_models.Plan, error)
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

func (p *PlanService) CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (*db_models.Plan, error) {

	if request.UserID == "" || request.Place == "" || request.Duration == 0 {
		return nil, utils.ErrMissingRequiredField
	}

	userUUID, err := uuid.Parse(request.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	name := request.Name
	if name == "" {
		name = "My " + request.Place + " Plan"
	}

	// Image is not validated here even though the column is declared
	// not null; the original backend had the same gap and callers rely
	// on an empty image being accepted.
	plan := &db_models.Plan{
		UserID:   userUUID,
		Place:    request.Place,
		Duration: request.Duration,
		Name:     name,
		Image:    request.Image,
	}

	if request.Description != "" {
		plan.Description = &request.Description
	}

	// Optional lists are persisted only when non-empty. An empty list is
	// indistinguishable from an absent one: the column stays NULL and the
	// key never appears in the serialized plan.
	if len(request.Activities) > 0 {
		plan.Activities = request.Activities
	}
	if len(request.Attractions) > 0 {
		plan.Attractions = request.Attractions
	}
	if len(request.Foods) > 0 {
		plan.Foods = request.Foods
	}
	if len(request.PackingList) > 0 {
		plan.PackingList = request.PackingList
	}

	if err := p.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return plan, nil
}

func (p *PlanService) GetPlans(ctx context.Context, userId string) ([]db_models.Plan, error) {

	var plans []db_models.Plan
	var err error

	if userId != "" {
		plans, err = p.planRepo.GetPlansByUserId(ctx, userId)
	} else {
		plans, err = p.planRepo.GetAllPlans(ctx)
	}

	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if len(plans) == 0 {
		return nil, utils.ErrNoPlansFound
	}

	return plans, nil
}

func (p *PlanService) GetPlanById(ctx context.Context, planId string) (*db_models.Plan, error) {

	plan, err := p.planRepo.GetPlanById(ctx, planId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	return plan, nil
}
