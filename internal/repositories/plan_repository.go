package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"trotter/internal/models/db_models"
)

type IPlanRepository interface {
	Insert(ctx context.Context, plan *db_models.Plan) error
	GetAllPlans(ctx context.Context) ([]db_models.Plan, error)
	GetPlansByUserId(ctx context.Context, userID string) ([]db_models.Plan, error)
	GetPlanById(ctx context.Context, planID string) (*db_models.Plan, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p *PlanRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *PlanRepository) GetAllPlans(ctx context.Context) ([]db_models.Plan, error) {

	var plans []db_models.Plan
	err := p.db.WithContext(ctx).Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *PlanRepository) GetPlansByUserId(ctx context.Context, userID string) ([]db_models.Plan, error) {

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	var plans []db_models.Plan
	err = p.db.WithContext(ctx).Where("user_id = ?", userUUID).Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *PlanRepository) GetPlanById(ctx context.Context, planID string) (*db_models.Plan, error) {

	// A malformed id is a store-level failure, not a not-found.
	planUUID, err := uuid.Parse(planID)
	if err != nil {
		return nil, err
	}

	var plan db_models.Plan
	err = p.db.WithContext(ctx).First(&plan, "id = ?", planUUID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}
