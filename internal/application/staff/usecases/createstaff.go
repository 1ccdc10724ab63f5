package usecases

import (
	"context"
	"errors"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/entitlement"
	"gymstack/internal/application/staff/dto"
	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/user"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

// CreateStaffCommand creates a staff account inside the actor's organization.
// Creation is gated on the tenant's active-staff cap. Owner accounts are only
// created through organization onboarding, never here.
type CreateStaffCommand struct {
	ActorRole      permission.Role
	OrganizationID uint
	Email          string
	Name           string
	Password       string
	Role           permission.Role
}

// WelcomeMailer delivers the onboarding email for new staff accounts.
type WelcomeMailer interface {
	SendStaffWelcomeEmail(to, name, organizationName string) error
}

type CreateStaffUseCase struct {
	users         user.Repository
	organizations organization.Repository
	permissions   authz.PermissionService
	entitlements  entitlement.Service
	mailer        WelcomeMailer
	bcryptCost    int
	logger        logger.Interface
}

func NewCreateStaffUseCase(
	users user.Repository,
	organizations organization.Repository,
	permissions authz.PermissionService,
	entitlements entitlement.Service,
	mailer WelcomeMailer,
	bcryptCost int,
	logger logger.Interface,
) *CreateStaffUseCase {
	return &CreateStaffUseCase{
		users:         users,
		organizations: organizations,
		permissions:   permissions,
		entitlements:  entitlements,
		mailer:        mailer,
		bcryptCost:    bcryptCost,
		logger:        logger,
	}
}

func (uc *CreateStaffUseCase) Execute(ctx context.Context, cmd CreateStaffCommand) (*dto.StaffDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.StaffCreate); err != nil {
		return nil, err
	}
	if cmd.Role == permission.RoleGod || cmd.Role == permission.RoleOwner {
		return nil, apperrors.NewValidationError("invalid staff role", cmd.Role.String())
	}
	if !cmd.Role.IsValid() {
		return nil, apperrors.NewValidationError("invalid staff role", cmd.Role.String())
	}
	if err := uc.entitlements.RequireStaffLimit(ctx, cmd.OrganizationID); err != nil {
		return nil, err
	}

	if cmd.Password == "" {
		return nil, apperrors.NewValidationError("password is required")
	}
	hash, err := utils.HashPassword(cmd.Password, uc.bcryptCost)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to hash password")
	}

	orgID := cmd.OrganizationID
	u, err := user.NewUser(cmd.Email, cmd.Name, hash, cmd.Role, &orgID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) || apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("email already registered", cmd.Email)
		}
		return nil, err
	}

	uc.logger.Infow("staff account created",
		"organization_id", cmd.OrganizationID,
		"user_id", u.ID(),
		"role", cmd.Role.String(),
	)

	uc.sendWelcomeEmail(ctx, u, cmd.OrganizationID)

	return dto.ToStaffDTO(u), nil
}

// sendWelcomeEmail is best effort, delivery problems never fail the creation.
func (uc *CreateStaffUseCase) sendWelcomeEmail(ctx context.Context, u *user.User, organizationID uint) {
	if uc.mailer == nil {
		return
	}
	org, err := uc.organizations.GetByID(ctx, organizationID)
	if err != nil {
		uc.logger.Warnw("failed to load organization for welcome email",
			"organization_id", organizationID,
			"error", err)
		return
	}
	if err := uc.mailer.SendStaffWelcomeEmail(u.Email(), u.Name(), org.Name()); err != nil {
		uc.logger.Warnw("failed to send staff welcome email",
			"user_id", u.ID(),
			"error", err)
	}
}
