package plan

import (
	"context"
	"fmt"

	"fitlife-service/internal/domain/plan"
	xerrors "fitlife-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type PlanStore interface {
	Create(ctx context.Context, p *plan.Plan) error
	FindByID(ctx context.Context, id int64) (*plan.Plan, error)
	List(ctx context.Context, activeOnly bool) ([]plan.Plan, error)
	Update(ctx context.Context, id int64, p *plan.Plan) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type PlanService struct {
	planRepo PlanStore
	logger   *zap.Logger
}

func NewPlanService(planRepo PlanStore, logger *zap.Logger) *PlanService {
	return &PlanService{planRepo: planRepo, logger: logger}
}

// CreatePlan adds a subscription tier.
func (s *PlanService) CreatePlan(ctx context.Context, req *plan.CreatePlanRequest) (*plan.Plan, error) {
	if req.DurationDays < 1 {
		return nil, fmt.Errorf("duration must be at least one day: %w", xerrors.ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price must not be negative: %w", xerrors.ErrInvalidInput)
	}

	p := &plan.Plan{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Features:     req.Features,
		IsActive:     true,
	}

	if err := s.planRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("plan created", zap.Int64("plan_id", p.ID), zap.String("name", p.Name))

	return p, nil
}

// GetPlan retrieves a plan by ID.
func (s *PlanService) GetPlan(ctx context.Context, id int64) (*plan.Plan, error) {
	return s.planRepo.FindByID(ctx, id)
}

// ListPlans retrieves plans; activeOnly hides soft-disabled tiers.
func (s *PlanService) ListPlans(ctx context.Context, activeOnly bool) ([]plan.Plan, error) {
	return s.planRepo.List(ctx, activeOnly)
}

// UpdatePlan mutates a plan. Existing payments keep the plan name they
// recorded at payment time; this only affects future renewals.
func (s *PlanService) UpdatePlan(ctx context.Context, id int64, req *plan.UpdatePlanRequest) (*plan.Plan, error) {
	p, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("price must not be negative: %w", xerrors.ErrInvalidInput)
		}
		p.Price = *req.Price
	}
	if req.DurationDays != nil {
		if *req.DurationDays < 1 {
			return nil, fmt.Errorf("duration must be at least one day: %w", xerrors.ErrInvalidInput)
		}
		p.DurationDays = *req.DurationDays
	}
	if req.Features != nil {
		p.Features = req.Features
	}

	if err := s.planRepo.Update(ctx, id, p); err != nil {
		return nil, err
	}

	s.logger.Info("plan updated", zap.Int64("plan_id", id))

	return p, nil
}

// SetPlanActive toggles the soft-disable flag.
func (s *PlanService) SetPlanActive(ctx context.Context, id int64, active bool) error {
	if err := s.planRepo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.logger.Info("plan toggled", zap.Int64("plan_id", id), zap.Bool("active", active))
	return nil
}
