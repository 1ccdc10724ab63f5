package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/uow"
	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/subscription"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

// DeleteOrganizationCommand removes a tenant and its subscription. System
// console only.
type DeleteOrganizationCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
}

type DeleteOrganizationUseCase struct {
	tx            uow.TxManager
	organizations organization.Repository
	subscriptions subscription.Repository
	permissions   authz.PermissionService
	logger        logger.Interface
}

func NewDeleteOrganizationUseCase(
	tx uow.TxManager,
	organizations organization.Repository,
	subscriptions subscription.Repository,
	permissions authz.PermissionService,
	logger logger.Interface,
) *DeleteOrganizationUseCase {
	return &DeleteOrganizationUseCase{
		tx:            tx,
		organizations: organizations,
		subscriptions: subscriptions,
		permissions:   permissions,
		logger:        logger,
	}
}

func (uc *DeleteOrganizationUseCase) Execute(ctx context.Context, cmd DeleteOrganizationCommand) error {
	if err := uc.permissions.Require(cmd.ActorRole, permission.OrganizationsDelete); err != nil {
		return err
	}

	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.organizations.GetByID(txCtx, cmd.OrganizationID); err != nil {
			if errors.Is(err, organization.ErrOrganizationNotFound) {
				return apperrors.NewNotFoundError("organization not found")
			}
			return err
		}
		if err := uc.subscriptions.DeleteByOrganization(txCtx, cmd.OrganizationID); err != nil {
			return err
		}
		return uc.organizations.Delete(txCtx, cmd.OrganizationID)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("organization deleted", "organization_id", cmd.OrganizationID)
	return nil
}
