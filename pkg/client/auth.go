package client

import "context"

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user,omitempty"`
}

// User represents a team member
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// Login authenticates with username and password
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	req := LoginRequest{
		Username: username,
		Password: password,
	}

	var resp AuthResponse
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/login", req, &resp); err != nil {
		return nil, err
	}

	// Automatically set the token for future requests
	if resp.AccessToken != "" {
		c.SetToken(resp.AccessToken)
	}

	return &resp, nil
}

// Register creates a new team member account
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/register", req, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		c.SetToken(resp.AccessToken)
	}

	return &resp, nil
}

// GetCurrentUser retrieves the currently authenticated user
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.doRequest(ctx, "GET", "/api/v1/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout logs out the current user
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/logout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}
