package dto

import (
	"github.com/teamdispo/dispo/internal/domain/availability"
	"github.com/teamdispo/dispo/internal/domain/dailycheck"
)

// SubmitCheckRequest represents a daily stand-up submission
type SubmitCheckRequest struct {
	Yesterday string `json:"yesterday,omitempty" validate:"omitempty,max=2000"`
	Today     string `json:"today" validate:"required,max=2000"`
	Blockers  string `json:"blockers,omitempty" validate:"omitempty,max=2000"`
	Mood      int    `json:"mood" validate:"required,min=1,max=5"`
}

// CheckDTO represents a daily check in API responses
type CheckDTO struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Yesterday string `json:"yesterday,omitempty"`
	Today     string `json:"today"`
	Blockers  string `json:"blockers,omitempty"`
	Mood      int    `json:"mood"`
	CreatedAt int64  `json:"createdAt"`
}

// CheckEntryDTO is a check joined with its owner
type CheckEntryDTO struct {
	CheckDTO
	User OwnerDTO `json:"user"`
}

// FeedDTO is the daily stand-up view
type FeedDTO struct {
	Date    string          `json:"date"`
	Checks  []CheckEntryDTO `json:"checks"`
	Members []OwnerDTO      `json:"members"`
}

// NewCheckDTO maps a domain check onto the API shape
func NewCheckDTO(c *dailycheck.Check) CheckDTO {
	return CheckDTO{
		ID:        c.ID,
		Date:      c.Date.Format(availability.DateLayout),
		Yesterday: c.Yesterday,
		Today:     c.Today,
		Blockers:  c.Blockers,
		Mood:      c.Mood,
		CreatedAt: c.CreatedAt.Unix(),
	}
}

// NewFeedDTO maps a domain feed onto the API shape
func NewFeedDTO(f *dailycheck.Feed) FeedDTO {
	checks := make([]CheckEntryDTO, 0, len(f.Checks))
	for _, e := range f.Checks {
		checks = append(checks, CheckEntryDTO{
			CheckDTO: NewCheckDTO(&e.Check),
			User: OwnerDTO{
				ID:          e.Owner.ID,
				Username:    e.Owner.Username,
				DisplayName: e.Owner.DisplayName,
			},
		})
	}

	members := make([]OwnerDTO, 0, len(f.Members))
	for _, m := range f.Members {
		members = append(members, OwnerDTO{
			ID:          m.ID,
			Username:    m.Username,
			DisplayName: m.DisplayName,
		})
	}

	return FeedDTO{
		Date:    f.Date.Format(availability.DateLayout),
		Checks:  checks,
		Members: members,
	}
}
