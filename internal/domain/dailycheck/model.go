package dailycheck

import "time"

// Check is one member's daily stand-up entry. One check per user per
// calendar day.
type Check struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Date      time.Time `json:"date"`
	Yesterday string    `json:"yesterday"`
	Today     string    `json:"today"`
	Blockers  string    `json:"blockers"`
	Mood      int       `json:"mood"` // 1..5
	CreatedAt time.Time `json:"createdAt"`
}

// Owner is the minimal user identity joined onto feed results
type Owner struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// Entry is a check joined with its owner
type Entry struct {
	Check
	Owner Owner `json:"user"`
}
