package announcement

import (
	"fmt"
	"time"
)

// Announcement is an org-scoped dashboard notice. The body is authored in
// markdown; the rendered, sanitized HTML is stored alongside it.
type Announcement struct {
	id             uint
	organizationID uint
	title          string
	body           string
	bodyHTML       string
	authorID       uint
	publishedAt    time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAnnouncement(organizationID, authorID uint, title, body, bodyHTML string) (*Announcement, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("announcement title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("announcement title too long (max 200 characters)")
	}
	if body == "" {
		return nil, fmt.Errorf("announcement body is required")
	}

	now := time.Now()
	return &Announcement{
		organizationID: organizationID,
		title:          title,
		body:           body,
		bodyHTML:       bodyHTML,
		authorID:       authorID,
		publishedAt:    now,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructAnnouncement(
	announcementID, organizationID, authorID uint,
	title, body, bodyHTML string,
	publishedAt, createdAt, updatedAt time.Time,
) (*Announcement, error) {
	if announcementID == 0 {
		return nil, fmt.Errorf("announcement ID cannot be zero")
	}
	return &Announcement{
		id:             announcementID,
		organizationID: organizationID,
		title:          title,
		body:           body,
		bodyHTML:       bodyHTML,
		authorID:       authorID,
		publishedAt:    publishedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (a *Announcement) ID() uint               { return a.id }
func (a *Announcement) OrganizationID() uint   { return a.organizationID }
func (a *Announcement) Title() string          { return a.title }
func (a *Announcement) Body() string           { return a.body }
func (a *Announcement) BodyHTML() string       { return a.bodyHTML }
func (a *Announcement) AuthorID() uint         { return a.authorID }
func (a *Announcement) PublishedAt() time.Time { return a.publishedAt }
func (a *Announcement) CreatedAt() time.Time   { return a.createdAt }
func (a *Announcement) UpdatedAt() time.Time   { return a.updatedAt }

func (a *Announcement) SetID(announcementID uint) error {
	if a.id != 0 {
		return fmt.Errorf("announcement ID is already set")
	}
	if announcementID == 0 {
		return fmt.Errorf("announcement ID cannot be zero")
	}
	a.id = announcementID
	return nil
}
