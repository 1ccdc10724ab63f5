package organization

import (
	"fmt"
	"time"

	"gymstack/internal/shared/id"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Organization represents the tenant aggregate root. It owns the gym's
// members, staff users, memberships, plans and configuration.
type Organization struct {
	id               uint
	sid              string
	name             string
	slug             string
	imageURL         string
	planSlug         string
	planName         string
	config           map[string]any
	storageUsedBytes int64
	status           Status
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewOrganization creates a new organization on the given organization plan.
func NewOrganization(name, slug, planSlug, planName string) (*Organization, error) {
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("organization name too long (max 100 characters)")
	}
	if slug == "" {
		return nil, fmt.Errorf("organization slug is required")
	}
	if len(slug) > 100 {
		return nil, fmt.Errorf("organization slug too long (max 100 characters)")
	}
	if planSlug == "" {
		return nil, fmt.Errorf("organization plan slug is required")
	}

	now := time.Now()
	return &Organization{
		sid:       id.MustGenerateWithPrefix(id.PrefixOrganization, id.DefaultLength),
		name:      name,
		slug:      slug,
		planSlug:  planSlug,
		planName:  planName,
		config:    make(map[string]any),
		status:    StatusActive,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructOrganization reconstructs an organization from persistence.
func ReconstructOrganization(
	orgID uint,
	sid, name, slug, imageURL, planSlug, planName string,
	config map[string]any,
	storageUsedBytes int64,
	status Status,
	version int,
	createdAt, updatedAt time.Time,
) (*Organization, error) {
	if orgID == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if status != StatusActive && status != StatusInactive {
		return nil, fmt.Errorf("invalid organization status: %s", status)
	}
	if config == nil {
		config = make(map[string]any)
	}

	return &Organization{
		id:               orgID,
		sid:              sid,
		name:             name,
		slug:             slug,
		imageURL:         imageURL,
		planSlug:         planSlug,
		planName:         planName,
		config:           config,
		storageUsedBytes: storageUsedBytes,
		status:           status,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (o *Organization) ID() uint                 { return o.id }
func (o *Organization) SID() string              { return o.sid }
func (o *Organization) Name() string             { return o.name }
func (o *Organization) Slug() string             { return o.slug }
func (o *Organization) ImageURL() string         { return o.imageURL }
func (o *Organization) PlanSlug() string         { return o.planSlug }
func (o *Organization) PlanName() string         { return o.planName }
func (o *Organization) StorageUsedBytes() int64  { return o.storageUsedBytes }
func (o *Organization) Status() Status           { return o.status }
func (o *Organization) Version() int             { return o.version }
func (o *Organization) CreatedAt() time.Time     { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time     { return o.updatedAt }

// Config returns a copy of the configuration blob.
func (o *Organization) Config() map[string]any {
	out := make(map[string]any, len(o.config))
	for k, v := range o.config {
		out[k] = v
	}
	return out
}

// SetID sets the organization ID (only for persistence layer use)
func (o *Organization) SetID(orgID uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if orgID == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = orgID
	return nil
}

// Rename changes the display name.
func (o *Organization) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("organization name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("organization name too long (max 100 characters)")
	}
	o.name = name
	o.touch()
	return nil
}

// SetImageURL replaces the logo image URL.
func (o *Organization) SetImageURL(url string) {
	o.imageURL = url
	o.touch()
}

// ChangePlan moves the organization to a different organization plan.
func (o *Organization) ChangePlan(planSlug, planName string) error {
	if planSlug == "" {
		return fmt.Errorf("plan slug is required")
	}
	o.planSlug = planSlug
	o.planName = planName
	o.touch()
	return nil
}

// MergeConfig merges patch into the configuration blob. The merge is two
// levels deep: top-level keys are replaced, except when both the existing and
// the incoming value are maps, in which case their keys are merged. A nil
// value in the patch deletes the key.
func (o *Organization) MergeConfig(patch map[string]any) {
	if o.config == nil {
		o.config = make(map[string]any)
	}
	for key, value := range patch {
		if value == nil {
			delete(o.config, key)
			continue
		}
		incoming, incomingIsMap := value.(map[string]any)
		existing, existingIsMap := o.config[key].(map[string]any)
		if incomingIsMap && existingIsMap {
			merged := make(map[string]any, len(existing)+len(incoming))
			for k, v := range existing {
				merged[k] = v
			}
			for k, v := range incoming {
				if v == nil {
					delete(merged, k)
					continue
				}
				merged[k] = v
			}
			o.config[key] = merged
			continue
		}
		o.config[key] = value
	}
	o.touch()
}

// AddStorageUsage adjusts the tracked storage usage by delta bytes.
func (o *Organization) AddStorageUsage(delta int64) {
	o.storageUsedBytes += delta
	if o.storageUsedBytes < 0 {
		o.storageUsedBytes = 0
	}
	o.touch()
}

// Deactivate marks the organization inactive (soft-disabled tenant).
func (o *Organization) Deactivate() {
	if o.status == StatusInactive {
		return
	}
	o.status = StatusInactive
	o.touch()
}

// Activate re-enables an inactive organization.
func (o *Organization) Activate() {
	if o.status == StatusActive {
		return
	}
	o.status = StatusActive
	o.touch()
}

func (o *Organization) IsActive() bool {
	return o.status == StatusActive
}

func (o *Organization) touch() {
	o.updatedAt = time.Now()
	o.version++
}
