package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/teamdispo/dispo/internal/config"
	"github.com/teamdispo/dispo/internal/domain/availability"
	"github.com/teamdispo/dispo/internal/domain/user"
	"github.com/teamdispo/dispo/internal/repository/postgres"
	"github.com/teamdispo/dispo/migrations"
)

// seedFile is the YAML roster format consumed by the seeder
type seedFile struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	Username     string            `yaml:"username"`
	Password     string            `yaml:"password"`
	FirstName    string            `yaml:"firstName"`
	LastName     string            `yaml:"lastName"`
	Declarations []seedDeclaration `yaml:"declarations"`
}

type seedDeclaration struct {
	PeriodKind    string `yaml:"periodKind"`
	StartDate     string `yaml:"startDate"`
	EndDate       string `yaml:"endDate"`
	Status        string `yaml:"status"`
	TimeRange     string `yaml:"timeRange"`
	OnSiteLodging bool   `yaml:"onSiteLodging"`
}

func main() {
	path := flag.String("file", "seed.yaml", "path to the YAML roster file")
	flag.Parse()

	if err := run(*path); err != nil {
		fmt.Fprintf(os.Stderr, "Seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read roster: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse roster: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := postgres.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, migrations.GetFS()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	userRepo := postgres.NewUserRepository(db)
	availabilityRepo := postgres.NewAvailabilityRepository(db)
	ctx := context.Background()

	for _, su := range seed.Users {
		u, err := userRepo.GetByUsername(ctx, su.Username)
		if err != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), cfg.Auth.BCryptCost)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", su.Username, err)
			}
			u = &user.User{
				Username:     su.Username,
				FirstName:    su.FirstName,
				LastName:     su.LastName,
				PasswordHash: string(hash),
			}
			if err := userRepo.Create(ctx, u); err != nil {
				return fmt.Errorf("create user %s: %w", su.Username, err)
			}
			fmt.Printf("Created user %s\n", su.Username)
		} else {
			fmt.Printf("User %s already exists, keeping\n", su.Username)
		}

		for _, sd := range su.Declarations {
			start, err := time.ParseInLocation(availability.DateLayout, sd.StartDate, time.UTC)
			if err != nil {
				return fmt.Errorf("declaration for %s: bad start date %q", su.Username, sd.StartDate)
			}
			end, err := time.ParseInLocation(availability.DateLayout, sd.EndDate, time.UTC)
			if err != nil {
				return fmt.Errorf("declaration for %s: bad end date %q", su.Username, sd.EndDate)
			}

			decl := &availability.Declaration{
				UserID:        u.ID,
				PeriodKind:    availability.PeriodKind(sd.PeriodKind),
				StartDate:     start,
				EndDate:       end,
				Status:        availability.Status(sd.Status),
				TimeRangeText: sd.TimeRange,
				OnSiteLodging: sd.OnSiteLodging,
			}
			if err := availabilityRepo.Replace(ctx, decl); err != nil {
				return fmt.Errorf("declaration for %s: %w", su.Username, err)
			}
		}
		if len(su.Declarations) > 0 {
			fmt.Printf("Stored %d declarations for %s\n", len(su.Declarations), su.Username)
		}
	}

	fmt.Println("Seed completed")
	return nil
}
