// Package dto carries announcement data between the application and interface
// layers.
package dto

import (
	"time"

	"gymstack/internal/domain/announcement"
)

type AnnouncementDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	BodyHTML    string    `json:"body_html"`
	AuthorID    uint      `json:"author_id"`
	PublishedAt time.Time `json:"published_at"`
}

func ToAnnouncementDTO(a *announcement.Announcement) *AnnouncementDTO {
	if a == nil {
		return nil
	}
	return &AnnouncementDTO{
		ID:          a.ID(),
		Title:       a.Title(),
		Body:        a.Body(),
		BodyHTML:    a.BodyHTML(),
		AuthorID:    a.AuthorID(),
		PublishedAt: a.PublishedAt(),
	}
}

func ToAnnouncementDTOList(items []*announcement.Announcement) []*AnnouncementDTO {
	out := make([]*AnnouncementDTO, 0, len(items))
	for _, a := range items {
		out = append(out, ToAnnouncementDTO(a))
	}
	return out
}
