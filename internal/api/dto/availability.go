package dto

import (
	"github.com/teamdispo/dispo/internal/domain/availability"
)

// DeclareRequest represents a new availability declaration.
// "today" is accepted as a synonym of "day" for period kind.
type DeclareRequest struct {
	PeriodKind    string `json:"periodKind" validate:"required,oneof=today day week month"`
	StartDate     string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Status        string `json:"status" validate:"required,oneof=available partial unavailable"`
	TimeRange     string `json:"timeRange,omitempty" validate:"omitempty,max=255"`
	OnSiteLodging bool   `json:"onSiteLodging"`
}

// DeclarationDTO represents a declaration in API responses
type DeclarationDTO struct {
	ID            int64  `json:"id"`
	PeriodKind    string `json:"periodKind"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Status        string `json:"status"`
	TimeRange     string `json:"timeRange,omitempty"`
	OnSiteLodging bool   `json:"onSiteLodging"`
	CreatedAt     int64  `json:"createdAt"`
}

// EntryDTO is a declaration joined with its owner, used by the team view
type EntryDTO struct {
	DeclarationDTO
	User OwnerDTO `json:"user"`
}

// OwnerDTO is the minimal owner identity on joined responses
type OwnerDTO struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// NewDeclarationDTO maps a domain declaration onto the API shape
func NewDeclarationDTO(d *availability.Declaration) DeclarationDTO {
	return DeclarationDTO{
		ID:            d.ID,
		PeriodKind:    string(d.PeriodKind),
		StartDate:     d.StartDate.Format(availability.DateLayout),
		EndDate:       d.EndDate.Format(availability.DateLayout),
		Status:        string(d.Status),
		TimeRange:     d.TimeRangeText,
		OnSiteLodging: d.OnSiteLodging,
		CreatedAt:     d.CreatedAt.Unix(),
	}
}

// NewEntryDTO maps a joined entry onto the API shape
func NewEntryDTO(e *availability.Entry) EntryDTO {
	return EntryDTO{
		DeclarationDTO: NewDeclarationDTO(&e.Declaration),
		User: OwnerDTO{
			ID:          e.Owner.ID,
			Username:    e.Owner.Username,
			DisplayName: e.Owner.DisplayName,
		},
	}
}
