package usecases

import (
	"context"
	"errors"
	"time"

	"gymstack/internal/application/authz"
	"gymstack/internal/application/membership/dto"
	"gymstack/internal/application/uow"
	"gymstack/internal/domain/member"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/plan"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

// CreateMembershipCommand signs a member up for a gym plan. Price and currency
// default to the plan's; EndDate defaults to StartDate plus the plan's
// duration; a zero StartDate means now.
type CreateMembershipCommand struct {
	ActorRole        permission.Role
	OrganizationID   uint
	MemberID         uint
	PlanID           uint
	PricePaid        *uint64
	StartDate        time.Time
	EndDate          time.Time
	StartImmediately bool
}

// ReceiptMailer delivers the payment receipt for a new membership.
type ReceiptMailer interface {
	SendMembershipReceiptEmail(to, memberName, planName string, amountCents uint64, currency string) error
}

type CreateMembershipUseCase struct {
	uow         *uow.UnitOfWork
	plans       plan.Repository
	members     member.Repository
	permissions authz.PermissionService
	mailer      ReceiptMailer
	logger      logger.Interface
}

func NewCreateMembershipUseCase(
	unitOfWork *uow.UnitOfWork,
	plans plan.Repository,
	members member.Repository,
	permissions authz.PermissionService,
	mailer ReceiptMailer,
	logger logger.Interface,
) *CreateMembershipUseCase {
	return &CreateMembershipUseCase{
		uow:         unitOfWork,
		plans:       plans,
		members:     members,
		permissions: permissions,
		mailer:      mailer,
		logger:      logger,
	}
}

func (uc *CreateMembershipUseCase) Execute(ctx context.Context, cmd CreateMembershipCommand) (*dto.MembershipDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.MembershipsCreate); err != nil {
		return nil, err
	}

	p, err := uc.plans.GetByID(ctx, cmd.PlanID, cmd.OrganizationID)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		return nil, err
	}
	if !p.IsActive() {
		return nil, apperrors.NewConflictError(plan.ErrPlanArchived.Error())
	}

	price := p.Price()
	if cmd.PricePaid != nil {
		price = *cmd.PricePaid
	}
	start := cmd.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	end := cmd.EndDate
	if end.IsZero() {
		end = start.AddDate(0, 0, p.DurationDays())
	}

	created, err := uc.uow.CreateMembershipAndActivate(ctx, uow.CreateMembershipAndActivateCommand{
		OrganizationID:   cmd.OrganizationID,
		MemberID:         cmd.MemberID,
		PlanID:           cmd.PlanID,
		PricePaid:        price,
		Currency:         p.Currency(),
		StartDate:        start,
		EndDate:          end,
		StartImmediately: cmd.StartImmediately,
	})
	if err != nil {
		return nil, err
	}

	uc.sendReceipt(ctx, cmd.OrganizationID, cmd.MemberID, p.Name(), price, p.Currency())

	return dto.ToMembershipDTO(created), nil
}

// sendReceipt is best effort, delivery problems never fail the signup.
func (uc *CreateMembershipUseCase) sendReceipt(ctx context.Context, organizationID, memberID uint, planName string, amountCents uint64, currency string) {
	if uc.mailer == nil {
		return
	}
	m, err := uc.members.GetByID(ctx, memberID, organizationID)
	if err != nil {
		uc.logger.Warnw("failed to load member for receipt email",
			"member_id", memberID,
			"error", err)
		return
	}
	if m.Email() == "" {
		return
	}
	if err := uc.mailer.SendMembershipReceiptEmail(m.Email(), m.Name(), planName, amountCents, currency); err != nil {
		uc.logger.Warnw("failed to send membership receipt email",
			"member_id", memberID,
			"error", err)
	}
}
