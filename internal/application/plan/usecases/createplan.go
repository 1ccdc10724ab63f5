package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/plan/dto"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/plan"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

// CreatePlanCommand creates a gym pricing plan. Slug is derived from the name
// when empty.
type CreatePlanCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	Name           string
	Slug           string
	Description    string
	Price          uint64
	Currency       string
	DurationDays   int
}

type CreatePlanUseCase struct {
	plans       plan.Repository
	permissions authz.PermissionService
	logger      logger.Interface
}

func NewCreatePlanUseCase(plans plan.Repository, permissions authz.PermissionService, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{plans: plans, permissions: permissions, logger: logger}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.PlansCreate); err != nil {
		return nil, err
	}

	slug := cmd.Slug
	if slug == "" {
		slug = utils.Slugify(cmd.Name)
	}

	if _, err := uc.plans.GetBySlug(ctx, slug, cmd.OrganizationID); err == nil {
		return nil, apperrors.NewConflictError("plan slug already exists", slug)
	} else if !errors.Is(err, plan.ErrPlanNotFound) {
		return nil, err
	}

	p, err := plan.NewPlan(cmd.OrganizationID, cmd.Name, slug, cmd.Description, cmd.Price, cmd.Currency, cmd.DurationDays)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.plans.Create(ctx, p); err != nil {
		if errors.Is(err, plan.ErrDuplicateSlug) || apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("plan slug already exists", slug)
		}
		uc.logger.Errorw("failed to create plan", "error", err, "organization_id", cmd.OrganizationID)
		return nil, err
	}

	uc.logger.Infow("plan created", "organization_id", cmd.OrganizationID, "plan_id", p.ID(), "slug", slug)
	return dto.ToPlanDTO(p), nil
}
