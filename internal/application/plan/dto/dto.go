// Package dto carries gym plan data between the application and interface
// layers.
package dto

import (
	"time"

	"gymstack/internal/domain/plan"
)

type PlanDTO struct {
	ID           uint      `json:"-"`
	SID          string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	Price        uint64    `json:"price"`
	Currency     string    `json:"currency"`
	DurationDays int       `json:"duration_days"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:           p.ID(),
		SID:          p.SID(),
		Name:         p.Name(),
		Slug:         p.Slug(),
		Description:  p.Description(),
		Price:        p.Price(),
		Currency:     p.Currency(),
		DurationDays: p.DurationDays(),
		Status:       string(p.Status()),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func ToPlanDTOList(plans []*plan.Plan) []*PlanDTO {
	out := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, ToPlanDTO(p))
	}
	return out
}
