package main

import (
	"database/sql"
	"errors"
	"fmt"
	"github.com/kotche/notes/infrastructure/metrics"
	"github.com/kotche/notes/infrastructure/tracing"
	"github.com/kotche/notes/internal/app/server"
	"github.com/kotche/notes/internal/config"
	notes_repo "github.com/kotche/notes/internal/repository/notes"
	users_repo "github.com/kotche/notes/internal/repository/users"
	notes_serv "github.com/kotche/notes/internal/service/notes"
	users_serv "github.com/kotche/notes/internal/service/users"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	metrics.Init()
	metrics.StartMetricsServer(cfg.ServerConfig.MetricsAddr)

	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.PostgresConfig.User,
		cfg.PostgresConfig.Password,
		cfg.PostgresConfig.Host,
		cfg.PostgresConfig.Port,
		cfg.PostgresConfig.DBName,
		cfg.PostgresConfig.SSLMode,
	)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalln(err)
	}

	if err = runMigrations(connStr); err != nil {
		log.Fatalln("migration error:", err)
	}

	_, cleanup, err := tracing.InitTracing(cfg.TracingConfig.Endpoint)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	notesServ := notes_serv.NewDefaultService(notes_repo.NewDefaultRepository(db))
	usersServ := users_serv.NewDefaultService(users_repo.NewDefaultRepository(db))

	e, err := server.NewRouter(server.New(notesServ, usersServ))
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(e.Start(cfg.ServerConfig.Addr))
}

func runMigrations(dbURL string) error {
	m, err := migrate.New(
		"file://migrations",
		dbURL,
	)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err = m.Up(); !errors.Is(err, migrate.ErrNoChange) && err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
