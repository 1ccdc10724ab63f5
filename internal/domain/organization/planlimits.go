package organization

import "gymstack/internal/shared/constants"

// PlanLimits holds the usage caps and feature flags an organization plan
// grants to a tenant. Nil numeric limits mean unlimited.
type PlanLimits struct {
	MaxMembers      *int
	MaxStaff        *int
	MaxStorageBytes *int64
	Features        map[string]bool
}

// HasFeature reports whether the plan enables the given feature flag.
func (l PlanLimits) HasFeature(feature string) bool {
	return l.Features[feature]
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

// planLimitsBySlug is the static entitlement table keyed by organization plan
// slug. Built once; never mutated at runtime.
var planLimitsBySlug = map[string]PlanLimits{
	constants.PlanSlugFreeTrial: {
		MaxMembers:      intPtr(50),
		MaxStaff:        intPtr(3),
		MaxStorageBytes: int64Ptr(1 << 30), // 1 GiB
		Features: map[string]bool{
			constants.FeatureInvoicing: false,
			constants.FeatureAPIAccess: false,
		},
	},
	constants.PlanSlugBasic: {
		MaxMembers:      intPtr(200),
		MaxStaff:        intPtr(10),
		MaxStorageBytes: int64Ptr(10 << 30), // 10 GiB
		Features: map[string]bool{
			constants.FeatureInvoicing: true,
			constants.FeatureAPIAccess: false,
		},
	},
	constants.PlanSlugPro: {
		MaxMembers:      intPtr(1000),
		MaxStaff:        intPtr(50),
		MaxStorageBytes: int64Ptr(100 << 30), // 100 GiB
		Features: map[string]bool{
			constants.FeatureInvoicing: true,
			constants.FeatureAPIAccess: true,
		},
	},
	constants.PlanSlugUnlimited: {
		MaxMembers:      nil,
		MaxStaff:        nil,
		MaxStorageBytes: nil,
		Features: map[string]bool{
			constants.FeatureInvoicing: true,
			constants.FeatureAPIAccess: true,
		},
	},
}

// LimitsForPlanSlug resolves the limits for a plan slug. Unrecognized slugs
// fall back to the free-trial tier so a bad slug can never grant unlimited
// usage by accident.
func LimitsForPlanSlug(slug string) PlanLimits {
	if limits, ok := planLimitsBySlug[slug]; ok {
		return limits
	}
	return planLimitsBySlug[constants.PlanSlugFreeTrial]
}

// planNamesBySlug maps plan slugs to their display names.
var planNamesBySlug = map[string]string{
	constants.PlanSlugFreeTrial: "Free Trial",
	constants.PlanSlugBasic:     "Basic",
	constants.PlanSlugPro:       "Pro",
	constants.PlanSlugUnlimited: "Unlimited",
}

// PlanNameForSlug returns the display name for a plan slug, or the slug itself
// when it is not in the table.
func PlanNameForSlug(slug string) string {
	if name, ok := planNamesBySlug[slug]; ok {
		return name
	}
	return slug
}

// KnownPlanSlugs returns the slugs present in the entitlement table.
func KnownPlanSlugs() []string {
	return []string{
		constants.PlanSlugFreeTrial,
		constants.PlanSlugBasic,
		constants.PlanSlugPro,
		constants.PlanSlugUnlimited,
	}
}

// IsKnownPlanSlug reports whether slug has an entry in the entitlement table.
func IsKnownPlanSlug(slug string) bool {
	_, ok := planLimitsBySlug[slug]
	return ok
}
