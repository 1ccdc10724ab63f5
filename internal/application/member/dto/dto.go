// Package dto carries member data between the application and interface
// layers.
package dto

import (
	"time"

	"gymstack/internal/domain/member"
)

type MemberDTO struct {
	ID        uint      `json:"-"`
	SID       string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToMemberDTO(m *member.Member) *MemberDTO {
	if m == nil {
		return nil
	}
	return &MemberDTO{
		ID:        m.ID(),
		SID:       m.SID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Phone:     m.Phone(),
		Notes:     m.Notes(),
		IsActive:  m.IsActive(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func ToMemberDTOList(members []*member.Member) []*MemberDTO {
	out := make([]*MemberDTO, 0, len(members))
	for _, m := range members {
		out = append(out, ToMemberDTO(m))
	}
	return out
}
