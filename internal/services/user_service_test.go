package services

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/testutil"
)

func TestUserService_Register(t *testing.T) {
	mockRepo := testutil.NewMockUserRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewUserService(mockRepo, bcrypt.MinCost, log)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "secret123",
			wantErr:  false,
		},
		{
			name:     "username normalized to lowercase",
			username: "Bob",
			password: "secret123",
			wantErr:  false,
		},
		{
			name:     "duplicate username rejected",
			username: "alice",
			password: "another",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			u, err := service.Register(ctx, tt.username, tt.password, "Test", "User")

			if (err != nil) != tt.wantErr {
				t.Errorf("Register() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if u == nil {
					t.Error("Register() returned nil user")
					return
				}
				if u.PasswordHash == tt.password {
					t.Error("Register() stored the plaintext password")
				}
				if u.Username != "alice" && u.Username != "bob" {
					t.Errorf("Register() username = %v, want lowercase", u.Username)
				}
			}
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	mockRepo := testutil.NewMockUserRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewUserService(mockRepo, bcrypt.MinCost, log)

	ctx := context.Background()
	if _, err := service.Register(ctx, "alice", "secret123", "Alice", "Martin"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{
			name:     "correct credentials",
			username: "alice",
			password: "secret123",
			wantErr:  false,
		},
		{
			name:     "case-insensitive username",
			username: "Alice",
			password: "secret123",
			wantErr:  false,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "nope",
			wantErr:  true,
		},
		{
			name:     "unknown username",
			username: "mallory",
			password: "secret123",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := service.Authenticate(ctx, tt.username, tt.password)

			if (err != nil) != tt.wantErr {
				t.Errorf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && u.Username != "alice" {
				t.Errorf("Authenticate() username = %v, want alice", u.Username)
			}
		})
	}
}

func TestUserService_DisplayName(t *testing.T) {
	mockRepo := testutil.NewMockUserRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewUserService(mockRepo, bcrypt.MinCost, log)

	ctx := context.Background()
	u, err := service.Register(ctx, "carol", "secret123", "Carol", "Dane")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if got := u.DisplayName(); got != "Carol Dane" {
		t.Errorf("DisplayName() = %q, want %q", got, "Carol Dane")
	}
}
