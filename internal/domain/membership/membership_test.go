package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMembership(t *testing.T, startImmediately bool) *Membership {
	t.Helper()
	start := time.Now()
	m, err := NewMembership(1, 2, 3, 4900, "USD", start, start.AddDate(0, 0, 30), startImmediately)
	require.NoError(t, err)
	return m
}

func TestNewMembership(t *testing.T) {
	t.Run("pending by default", func(t *testing.T) {
		m := newTestMembership(t, false)
		assert.Equal(t, StatusPending, m.Status())
		assert.True(t, m.IsOpen())
		assert.Equal(t, 1, m.Version())
		assert.NotEmpty(t, m.SID())
	})

	t.Run("active when starting immediately", func(t *testing.T) {
		m := newTestMembership(t, true)
		assert.Equal(t, StatusActive, m.Status())
		assert.True(t, m.IsOpen())
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		start := time.Now()
		_, err := NewMembership(1, 2, 3, 0, "USD", start, start.AddDate(0, 0, -1), false)
		assert.Error(t, err)
	})

	t.Run("rejects missing currency", func(t *testing.T) {
		start := time.Now()
		_, err := NewMembership(1, 2, 3, 0, "", start, start.AddDate(0, 0, 30), false)
		assert.Error(t, err)
	})
}

func TestMembershipActivate(t *testing.T) {
	t.Run("pending to active", func(t *testing.T) {
		m := newTestMembership(t, false)
		require.NoError(t, m.Activate())
		assert.Equal(t, StatusActive, m.Status())
		assert.Equal(t, 2, m.Version())
	})

	t.Run("idempotent on active", func(t *testing.T) {
		m := newTestMembership(t, true)
		require.NoError(t, m.Activate())
		assert.Equal(t, 1, m.Version())
	})

	t.Run("rejected after cancellation", func(t *testing.T) {
		m := newTestMembership(t, true)
		require.NoError(t, m.Cancel())
		assert.Error(t, m.Activate())
	})
}

func TestMembershipCancel(t *testing.T) {
	t.Run("cancels pending and active", func(t *testing.T) {
		for _, startImmediately := range []bool{false, true} {
			m := newTestMembership(t, startImmediately)
			require.NoError(t, m.Cancel())
			assert.Equal(t, StatusCancelled, m.Status())
			assert.False(t, m.IsOpen())
		}
	})

	t.Run("idempotent on cancelled", func(t *testing.T) {
		m := newTestMembership(t, true)
		require.NoError(t, m.Cancel())
		version := m.Version()
		require.NoError(t, m.Cancel())
		assert.Equal(t, version, m.Version())
	})

	t.Run("rejected on expired", func(t *testing.T) {
		m := newTestMembership(t, true)
		require.NoError(t, m.Expire())
		assert.Error(t, m.Cancel())
	})
}

func TestMembershipExpire(t *testing.T) {
	t.Run("active to expired", func(t *testing.T) {
		m := newTestMembership(t, true)
		require.NoError(t, m.Expire())
		assert.Equal(t, StatusExpired, m.Status())
		assert.False(t, m.IsOpen())
	})

	t.Run("rejected on pending", func(t *testing.T) {
		m := newTestMembership(t, false)
		assert.Error(t, m.Expire())
	})
}

func TestMembershipSoftDelete(t *testing.T) {
	m := newTestMembership(t, true)

	m.MarkDeleted()
	require.True(t, m.IsDeleted())
	assert.Equal(t, StatusActive, m.Status(), "soft delete keeps the status")
	assert.False(t, m.IsOpen(), "deleted membership does not block a new one")

	m.Restore()
	require.False(t, m.IsDeleted())
	assert.True(t, m.IsOpen())
}

func TestReconstructMembership(t *testing.T) {
	now := time.Now()

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := ReconstructMembership(1, "ms_abc", 1, 2, 3, Status("bogus"), 0, "USD", now, now.AddDate(0, 0, 30), nil, 1, now, now)
		assert.Error(t, err)
	})

	t.Run("preserves soft delete marker", func(t *testing.T) {
		deletedAt := now.Add(-time.Hour)
		m, err := ReconstructMembership(1, "ms_abc", 1, 2, 3, StatusActive, 4900, "USD", now, now.AddDate(0, 0, 30), &deletedAt, 3, now, now)
		require.NoError(t, err)
		assert.True(t, m.IsDeleted())
		assert.Equal(t, 3, m.Version())
	})
}

func TestStatusIsOpen(t *testing.T) {
	assert.True(t, StatusPending.IsOpen())
	assert.True(t, StatusActive.IsOpen())
	assert.False(t, StatusExpired.IsOpen())
	assert.False(t, StatusCancelled.IsOpen())
}
