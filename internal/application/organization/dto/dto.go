// Package dto carries organization data between the application and interface
// layers.
package dto

import (
	"time"

	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/subscription"
)

type OrganizationDTO struct {
	ID               uint           `json:"-"`
	SID              string         `json:"id"`
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	ImageURL         string         `json:"image_url,omitempty"`
	PlanSlug         string         `json:"plan_slug"`
	PlanName         string         `json:"plan_name"`
	Config           map[string]any `json:"config"`
	StorageUsedBytes int64          `json:"storage_used_bytes"`
	Status           string         `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type SubscriptionDTO struct {
	ID                 uint      `json:"-"`
	SID                string    `json:"id"`
	PlanSlug           string    `json:"plan_slug"`
	Status             string    `json:"status"`
	PricePaid          uint64    `json:"price_paid"`
	Currency           string    `json:"currency"`
	CurrentPeriodStart time.Time `json:"current_period_start"`
	CurrentPeriodEnd   time.Time `json:"current_period_end"`
}

type PlanLimitsDTO struct {
	MaxMembers      *int            `json:"max_members"`
	MaxStaff        *int            `json:"max_staff"`
	MaxStorageBytes *int64          `json:"max_storage_bytes"`
	Features        map[string]bool `json:"features"`
}

func ToOrganizationDTO(org *organization.Organization) *OrganizationDTO {
	if org == nil {
		return nil
	}
	return &OrganizationDTO{
		ID:               org.ID(),
		SID:              org.SID(),
		Name:             org.Name(),
		Slug:             org.Slug(),
		ImageURL:         org.ImageURL(),
		PlanSlug:         org.PlanSlug(),
		PlanName:         org.PlanName(),
		Config:           org.Config(),
		StorageUsedBytes: org.StorageUsedBytes(),
		Status:           string(org.Status()),
		CreatedAt:        org.CreatedAt(),
		UpdatedAt:        org.UpdatedAt(),
	}
}

func ToSubscriptionDTO(sub *subscription.Subscription) *SubscriptionDTO {
	if sub == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:                 sub.ID(),
		SID:                sub.SID(),
		PlanSlug:           sub.PlanSlug(),
		Status:             string(sub.Status()),
		PricePaid:          sub.PricePaid(),
		Currency:           sub.Currency(),
		CurrentPeriodStart: sub.CurrentPeriodStart(),
		CurrentPeriodEnd:   sub.CurrentPeriodEnd(),
	}
}

func ToPlanLimitsDTO(limits organization.PlanLimits) *PlanLimitsDTO {
	return &PlanLimitsDTO{
		MaxMembers:      limits.MaxMembers,
		MaxStaff:        limits.MaxStaff,
		MaxStorageBytes: limits.MaxStorageBytes,
		Features:        limits.Features,
	}
}
