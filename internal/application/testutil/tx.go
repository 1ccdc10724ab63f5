// Package testutil provides in-memory repository implementations and a
// transaction stub for application-layer tests. The memory repositories clone
// entities on read and write so tests observe the same aliasing rules a real
// database gives them, and the transaction stub restores repository state when
// the callback fails, mimicking a rollback.
package testutil

import "context"

// TxStore is a repository that can snapshot and restore its state.
type TxStore interface {
	Snapshot() any
	Restore(snapshot any)
}

// StubTxManager runs transaction callbacks against memory repositories.
// On callback error every registered store is restored to its pre-callback
// state and the error is returned unwrapped.
type StubTxManager struct {
	Stores []TxStore

	// BeginErr, when set, fails the transaction before the callback runs.
	BeginErr error
}

func NewStubTxManager(stores ...TxStore) *StubTxManager {
	return &StubTxManager{Stores: stores}
}

func (m *StubTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}
	snapshots := make([]any, len(m.Stores))
	for i, s := range m.Stores {
		snapshots[i] = s.Snapshot()
	}
	if err := fn(ctx); err != nil {
		for i, s := range m.Stores {
			s.Restore(snapshots[i])
		}
		return err
	}
	return nil
}
