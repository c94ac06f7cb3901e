package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Declaration represents an availability declaration
type Declaration struct {
	ID            int64  `json:"id"`
	PeriodKind    string `json:"periodKind"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Status        string `json:"status"`
	TimeRange     string `json:"timeRange,omitempty"`
	OnSiteLodging bool   `json:"onSiteLodging"`
	CreatedAt     int64  `json:"createdAt"`
}

// Entry is a declaration joined with its owner
type Entry struct {
	Declaration
	User Owner `json:"user"`
}

// Owner is the minimal owner identity on joined entries
type Owner struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// DeclareRequest represents a new declaration
type DeclareRequest struct {
	PeriodKind    string `json:"periodKind"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Status        string `json:"status"`
	TimeRange     string `json:"timeRange,omitempty"`
	OnSiteLodging bool   `json:"onSiteLodging"`
}

// ListOptions are the optional team-view filters
type ListOptions struct {
	Period        string // day, week, month (today is a synonym of day)
	OnSiteLodging *bool
	AvailableNow  bool
}

// Declare stores a declaration, replacing the caller's overlapping ones
func (c *Client) Declare(ctx context.Context, req DeclareRequest) (*Declaration, error) {
	var decl Declaration
	if err := c.doRequest(ctx, "POST", "/api/v1/availability", req, &decl); err != nil {
		return nil, err
	}
	return &decl, nil
}

// ListAvailability retrieves the team view under the given filters
func (c *Client) ListAvailability(ctx context.Context, opts ListOptions) ([]Entry, error) {
	params := url.Values{}
	if opts.Period != "" {
		params.Set("period", opts.Period)
	}
	if opts.OnSiteLodging != nil {
		params.Set("on_site_lodging", strconv.FormatBool(*opts.OnSiteLodging))
	}
	if opts.AvailableNow {
		params.Set("available_now", "true")
	}

	path := "/api/v1/availability"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var entries []Entry
	if err := c.doRequest(ctx, "GET", path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MyDeclarations retrieves the caller's own declarations
func (c *Client) MyDeclarations(ctx context.Context) ([]Declaration, error) {
	var decls []Declaration
	if err := c.doRequest(ctx, "GET", "/api/v1/availability/mine", nil, &decls); err != nil {
		return nil, err
	}
	return decls, nil
}

// DeleteDeclaration removes one of the caller's declarations
func (c *Client) DeleteDeclaration(ctx context.Context, id int64) error {
	return c.doRequest(ctx, "DELETE", fmt.Sprintf("/api/v1/availability/%d", id), nil, nil)
}
