package main

import (
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/tanachai/bookstore-api/internal/config"
	"github.com/tanachai/bookstore-api/migrations"
)

// runMigrations executes the given goose command ("up", "down" or
// "status") against the configured database using the embedded migration
// files, then closes the connection.
func runMigrations(cfg *config.Config, command string) error {
	slog.Info("Executing migrations", "command", command)

	db, err := setupAppDatabase(cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to set up database for migrations: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		return fmt.Errorf("unknown migration command: %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}

	slog.Info("Migrations completed", "command", command)
	return nil
}
