package postgres

import (
	"context"
	"testing"

	"github.com/teamdispo/dispo/internal/domain/user"
	"github.com/teamdispo/dispo/internal/testutil"
)

func TestUserRepository_Create(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewUserRepository(db)

	tests := []struct {
		name    string
		user    *user.User
		wantErr bool
	}{
		{
			name: "create user successfully",
			user: &user.User{
				Username:     "alice",
				FirstName:    "Alice",
				LastName:     "Martin",
				PasswordHash: "hash",
			},
			wantErr: false,
		},
		{
			name: "create another user",
			user: &user.User{
				Username:     "bob",
				FirstName:    "Bob",
				LastName:     "Stone",
				PasswordHash: "hash",
			},
			wantErr: false,
		},
		{
			name: "duplicate username rejected",
			user: &user.User{
				Username:     "alice",
				PasswordHash: "hash",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			err := repo.Create(ctx, tt.user)

			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && tt.user.ID == 0 {
				t.Error("Create() did not set user ID")
			}
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewUserRepository(db)
	ctx := context.Background()

	created := &user.User{
		Username:     "alice",
		FirstName:    "Alice",
		LastName:     "Martin",
		PasswordHash: "hash",
	}
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	u, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if u.ID != created.ID || u.FirstName != "Alice" {
		t.Errorf("GetByUsername() = %+v, want the created user", u)
	}

	if _, err := repo.GetByUsername(ctx, "nobody"); err == nil {
		t.Error("GetByUsername(nobody) succeeded, want not-found")
	}
}

func TestUserRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewUserRepository(db)
	ctx := context.Background()

	seed := []*user.User{
		{Username: "carol", FirstName: "Carol", LastName: "Zane", PasswordHash: "x"},
		{Username: "alice", FirstName: "Alice", LastName: "Martin", PasswordHash: "x"},
		{Username: "bob", FirstName: "Bob", LastName: "Martin", PasswordHash: "x"},
	}
	for _, u := range seed {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	var got []string
	for _, u := range users {
		got = append(got, u.Username)
	}
	want := []string{"alice", "bob", "carol"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s (ordered by last then first name)", i, got[i], want[i])
		}
	}
}
