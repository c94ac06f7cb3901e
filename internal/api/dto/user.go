package dto

import "github.com/teamdispo/dispo/internal/domain/user"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
}

// NewUserDTO maps a domain user onto the API shape
func NewUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DisplayName: u.DisplayName(),
	}
}
