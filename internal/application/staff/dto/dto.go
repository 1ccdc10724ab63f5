// Package dto carries staff account data between the application and
// interface layers.
package dto

import (
	"time"

	"gymstack/internal/domain/user"
)

type StaffDTO struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToStaffDTO(u *user.User) *StaffDTO {
	if u == nil {
		return nil
	}
	return &StaffDTO{
		ID:        u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func ToStaffDTOList(users []*user.User) []*StaffDTO {
	out := make([]*StaffDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToStaffDTO(u))
	}
	return out
}
