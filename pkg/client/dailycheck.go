package client

import "context"

// DailyCheck represents a stand-up entry
type DailyCheck struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Yesterday string `json:"yesterday,omitempty"`
	Today     string `json:"today"`
	Blockers  string `json:"blockers,omitempty"`
	Mood      int    `json:"mood"`
	CreatedAt int64  `json:"createdAt"`
}

// DailyCheckEntry is a check joined with its owner
type DailyCheckEntry struct {
	DailyCheck
	User Owner `json:"user"`
}

// Feed is the daily stand-up view
type Feed struct {
	Date    string            `json:"date"`
	Checks  []DailyCheckEntry `json:"checks"`
	Members []Owner           `json:"members"`
}

// SubmitCheckRequest represents a stand-up submission
type SubmitCheckRequest struct {
	Yesterday string `json:"yesterday,omitempty"`
	Today     string `json:"today"`
	Blockers  string `json:"blockers,omitempty"`
	Mood      int    `json:"mood"`
}

// SubmitDailyCheck records the caller's check for today
func (c *Client) SubmitDailyCheck(ctx context.Context, req SubmitCheckRequest) (*DailyCheck, error) {
	var check DailyCheck
	if err := c.doRequest(ctx, "POST", "/api/v1/daily-checks", req, &check); err != nil {
		return nil, err
	}
	return &check, nil
}

// TodayFeed retrieves today's stand-up feed
func (c *Client) TodayFeed(ctx context.Context) (*Feed, error) {
	var feed Feed
	if err := c.doRequest(ctx, "GET", "/api/v1/daily-checks/today", nil, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}
