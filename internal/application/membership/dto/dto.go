// Package dto carries membership data between the application and interface
// layers.
package dto

import (
	"time"

	"gymstack/internal/domain/membership"
)

type MembershipDTO struct {
	ID        uint       `json:"-"`
	SID       string     `json:"id"`
	MemberID  uint       `json:"member_id"`
	PlanID    uint       `json:"plan_id"`
	Status    string     `json:"status"`
	PricePaid uint64     `json:"price_paid"`
	Currency  string     `json:"currency"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToMembershipDTO(m *membership.Membership) *MembershipDTO {
	if m == nil {
		return nil
	}
	return &MembershipDTO{
		ID:        m.ID(),
		SID:       m.SID(),
		MemberID:  m.MemberID(),
		PlanID:    m.PlanID(),
		Status:    string(m.Status()),
		PricePaid: m.PricePaid(),
		Currency:  m.Currency(),
		StartDate: m.StartDate(),
		EndDate:   m.EndDate(),
		DeletedAt: m.DeletedAt(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func ToMembershipDTOList(memberships []*membership.Membership) []*MembershipDTO {
	out := make([]*MembershipDTO, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, ToMembershipDTO(m))
	}
	return out
}
