package main

import (
	"fmt"
	"os"

	"github.com/teamdispo/dispo/internal/config"
	"github.com/teamdispo/dispo/internal/repository/postgres"
	"github.com/teamdispo/dispo/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := postgres.New(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Println("Connected to database successfully")

	if err := postgres.RunMigrations(db, migrations.GetFS()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("All migrations completed successfully")
}
