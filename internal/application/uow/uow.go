// Package uow implements the atomic multi-entity transitions. Every operation
// here runs inside a single database transaction: partial writes never become
// visible, and any error rolls the whole transition back and propagates
// unchanged. Invariants that span entities (one open membership per member,
// the member active flag mirroring its membership) are re-checked inside the
// transaction, not trusted from earlier reads.
package uow

import (
	"context"

	"gymstack/internal/domain/member"
	"gymstack/internal/domain/membership"
	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/subscription"
	"gymstack/internal/domain/user"
	"gymstack/internal/shared/logger"
)

// TxManager runs a callback inside a transaction carried in the context.
// *db.TransactionManager satisfies it.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UnitOfWork bundles the repositories taking part in multi-entity writes.
type UnitOfWork struct {
	tx            TxManager
	organizations organization.Repository
	users         user.Repository
	members       member.Repository
	memberships   membership.Repository
	subscriptions subscription.Repository
	logger        logger.Interface
}

// New creates a UnitOfWork.
func New(
	tx TxManager,
	organizations organization.Repository,
	users user.Repository,
	members member.Repository,
	memberships membership.Repository,
	subscriptions subscription.Repository,
	log logger.Interface,
) *UnitOfWork {
	return &UnitOfWork{
		tx:            tx,
		organizations: organizations,
		users:         users,
		members:       members,
		memberships:   memberships,
		subscriptions: subscriptions,
		logger:        log.Named("uow"),
	}
}
