package uow

import (
	"context"
	"errors"
	"time"

	"gymstack/internal/domain/member"
	"gymstack/internal/domain/membership"
	apperrors "gymstack/internal/shared/errors"
)

// CreateMembershipAndActivateCommand signs a member up for a gym plan.
type CreateMembershipAndActivateCommand struct {
	OrganizationID   uint
	MemberID         uint
	PlanID           uint
	PricePaid        uint64
	Currency         string
	StartDate        time.Time
	EndDate          time.Time
	StartImmediately bool
}

// CreateMembershipAndActivate creates the membership and, when it starts out
// ACTIVE, flips the member's active flag in the same transaction. The
// one-open-membership invariant is re-checked inside the transaction; a
// PENDING membership does not activate the member.
func (u *UnitOfWork) CreateMembershipAndActivate(ctx context.Context, cmd CreateMembershipAndActivateCommand) (*membership.Membership, error) {
	var created *membership.Membership
	err := u.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		mem, err := u.members.GetByID(txCtx, cmd.MemberID, cmd.OrganizationID)
		if err != nil {
			if errors.Is(err, member.ErrMemberNotFound) {
				return apperrors.NewNotFoundError("member not found")
			}
			return err
		}

		open, err := u.memberships.FindOpenByMember(txCtx, cmd.MemberID, cmd.OrganizationID)
		if err != nil {
			return err
		}
		if open != nil {
			return apperrors.NewConflictError(membership.ErrDuplicateOpenMembership.Error())
		}

		created, err = membership.NewMembership(
			cmd.OrganizationID, cmd.MemberID, cmd.PlanID,
			cmd.PricePaid, cmd.Currency, cmd.StartDate, cmd.EndDate,
			cmd.StartImmediately,
		)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := u.memberships.Create(txCtx, created); err != nil {
			return err
		}

		if created.Status() == membership.StatusActive {
			mem.Activate()
			if err := u.members.Update(txCtx, mem); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Infow("membership created",
		"organization_id", cmd.OrganizationID,
		"member_id", cmd.MemberID,
		"membership_id", created.ID(),
		"status", string(created.Status()),
	)
	return created, nil
}

// CancelMembershipAndDeactivate cancels the membership and deactivates the
// member in one transaction. The lookup is tenant-scoped, so a membership
// belonging to another organization reads as not found.
func (u *UnitOfWork) CancelMembershipAndDeactivate(ctx context.Context, membershipID, organizationID uint) (*membership.Membership, error) {
	var cancelled *membership.Membership
	err := u.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		ms, err := u.memberships.GetByID(txCtx, membershipID, organizationID)
		if err != nil {
			if errors.Is(err, membership.ErrMembershipNotFound) {
				return apperrors.NewNotFoundError("membership not found")
			}
			return err
		}

		if err := ms.Cancel(); err != nil {
			return apperrors.NewConflictError(err.Error())
		}
		if err := u.memberships.Update(txCtx, ms); err != nil {
			return err
		}

		if err := u.deactivateMember(txCtx, ms.MemberID(), organizationID); err != nil {
			return err
		}
		cancelled = ms
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Infow("membership cancelled",
		"organization_id", organizationID,
		"membership_id", membershipID,
	)
	return cancelled, nil
}

// DeleteMembershipAndDeactivate soft-deletes the membership and deactivates
// the member in one transaction. The membership status is preserved so a
// later restore can recover it.
func (u *UnitOfWork) DeleteMembershipAndDeactivate(ctx context.Context, membershipID, organizationID uint) error {
	err := u.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		ms, err := u.memberships.GetByID(txCtx, membershipID, organizationID)
		if err != nil {
			if errors.Is(err, membership.ErrMembershipNotFound) {
				return apperrors.NewNotFoundError("membership not found")
			}
			return err
		}

		ms.MarkDeleted()
		if err := u.memberships.Update(txCtx, ms); err != nil {
			return err
		}
		return u.deactivateMember(txCtx, ms.MemberID(), organizationID)
	})
	if err != nil {
		return err
	}

	u.logger.Infow("membership deleted",
		"organization_id", organizationID,
		"membership_id", membershipID,
	)
	return nil
}

// RestoreMembershipAndActivate clears the soft-delete marker. The member is
// re-activated only when the restored membership is ACTIVE; restoring a
// cancelled or expired membership leaves the member inactive. Restoring an
// open membership is refused when the member has acquired another open one in
// the meantime.
func (u *UnitOfWork) RestoreMembershipAndActivate(ctx context.Context, membershipID, organizationID uint) (*membership.Membership, error) {
	var restored *membership.Membership
	err := u.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		ms, err := u.memberships.GetByIDIncludingDeleted(txCtx, membershipID, organizationID)
		if err != nil {
			if errors.Is(err, membership.ErrMembershipNotFound) {
				return apperrors.NewNotFoundError("membership not found")
			}
			return err
		}
		if !ms.IsDeleted() {
			return apperrors.NewConflictError(membership.ErrMembershipNotDeleted.Error())
		}

		if ms.Status().IsOpen() {
			open, err := u.memberships.FindOpenByMember(txCtx, ms.MemberID(), organizationID)
			if err != nil {
				return err
			}
			if open != nil {
				return apperrors.NewConflictError(membership.ErrDuplicateOpenMembership.Error())
			}
		}

		ms.Restore()
		if err := u.memberships.Update(txCtx, ms); err != nil {
			return err
		}

		if ms.Status() == membership.StatusActive {
			mem, err := u.members.GetByID(txCtx, ms.MemberID(), organizationID)
			if err != nil {
				return err
			}
			mem.Activate()
			if err := u.members.Update(txCtx, mem); err != nil {
				return err
			}
		}
		restored = ms
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Infow("membership restored",
		"organization_id", organizationID,
		"membership_id", membershipID,
		"status", string(restored.Status()),
	)
	return restored, nil
}

func (u *UnitOfWork) deactivateMember(ctx context.Context, memberID, organizationID uint) error {
	mem, err := u.members.GetByID(ctx, memberID, organizationID)
	if err != nil {
		return err
	}
	mem.Deactivate()
	return u.members.Update(ctx, mem)
}
