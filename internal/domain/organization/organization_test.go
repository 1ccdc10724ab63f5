package organization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrganization(t *testing.T) *Organization {
	t.Helper()
	org, err := NewOrganization("Iron Temple", "iron-temple", "pro", "Pro")
	require.NoError(t, err)
	return org
}

func TestNewOrganization(t *testing.T) {
	org := newTestOrganization(t)

	assert.Equal(t, "Iron Temple", org.Name())
	assert.Equal(t, "iron-temple", org.Slug())
	assert.Equal(t, "pro", org.PlanSlug())
	assert.Equal(t, StatusActive, org.Status())
	assert.True(t, org.IsActive())
	assert.NotEmpty(t, org.SID())

	_, err := NewOrganization("", "slug", "pro", "Pro")
	assert.Error(t, err)
}

func TestOrganizationRename(t *testing.T) {
	org := newTestOrganization(t)

	require.NoError(t, org.Rename("Steel Temple"))
	assert.Equal(t, "Steel Temple", org.Name())

	assert.Error(t, org.Rename(""))
}

func TestOrganizationChangePlan(t *testing.T) {
	org := newTestOrganization(t)

	require.NoError(t, org.ChangePlan("unlimited", "Unlimited"))
	assert.Equal(t, "unlimited", org.PlanSlug())
	assert.Equal(t, "Unlimited", org.PlanName())

	assert.Error(t, org.ChangePlan("", ""))
}

func TestMergeConfig(t *testing.T) {
	t.Run("replaces scalar keys", func(t *testing.T) {
		org := newTestOrganization(t)
		org.MergeConfig(map[string]any{"theme": "dark"})
		org.MergeConfig(map[string]any{"theme": "light"})
		assert.Equal(t, "light", org.Config()["theme"])
	})

	t.Run("merges nested maps one level deep", func(t *testing.T) {
		org := newTestOrganization(t)
		org.MergeConfig(map[string]any{
			"notifications": map[string]any{"email": true, "sms": false},
		})
		org.MergeConfig(map[string]any{
			"notifications": map[string]any{"sms": true},
		})

		nested, ok := org.Config()["notifications"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, nested["email"])
		assert.Equal(t, true, nested["sms"])
	})

	t.Run("nil deletes keys at both levels", func(t *testing.T) {
		org := newTestOrganization(t)
		org.MergeConfig(map[string]any{
			"theme":         "dark",
			"notifications": map[string]any{"email": true},
		})

		org.MergeConfig(map[string]any{"theme": nil})
		assert.NotContains(t, org.Config(), "theme")

		org.MergeConfig(map[string]any{
			"notifications": map[string]any{"email": nil},
		})
		nested, ok := org.Config()["notifications"].(map[string]any)
		require.True(t, ok)
		assert.NotContains(t, nested, "email")
	})

	t.Run("non-map value replaces a map wholesale", func(t *testing.T) {
		org := newTestOrganization(t)
		org.MergeConfig(map[string]any{"features": map[string]any{"classes": true}})
		org.MergeConfig(map[string]any{"features": "none"})
		assert.Equal(t, "none", org.Config()["features"])
	})

	t.Run("config getter returns a copy", func(t *testing.T) {
		org := newTestOrganization(t)
		org.MergeConfig(map[string]any{"theme": "dark"})
		cfg := org.Config()
		cfg["theme"] = "mutated"
		assert.Equal(t, "dark", org.Config()["theme"])
	})
}

func TestOrganizationLifecycle(t *testing.T) {
	org := newTestOrganization(t)

	org.Deactivate()
	assert.False(t, org.IsActive())
	assert.Equal(t, StatusInactive, org.Status())

	org.Activate()
	assert.True(t, org.IsActive())
}

func TestOrganizationStorageUsage(t *testing.T) {
	org := newTestOrganization(t)

	org.AddStorageUsage(1024)
	assert.Equal(t, int64(1024), org.StorageUsedBytes())

	org.AddStorageUsage(-2048)
	assert.Equal(t, int64(0), org.StorageUsedBytes(), "usage never goes negative")
}
