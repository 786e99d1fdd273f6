package main

import (
	"database/sql"
	"fmt"
	"github.com/kotche/notes/internal/app/notifier"
	"github.com/kotche/notes/internal/config"
	"github.com/kotche/notes/internal/metrics"
	notes_repo "github.com/kotche/notes/internal/repository/notes"
	"github.com/kotche/notes/internal/service/kafka"
	notes_serv "github.com/kotche/notes/internal/service/notes"
	"log"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	metrics.Init()
	metrics.StartMetricsServer(":8081")

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

	notesServ := notes_serv.NewDefaultService(notes_repo.NewDefaultRepository(db))

	kafkaServ, err := kafka.New(cfg.KafkaConfig, 1, 1)
	if err != nil {
		log.Fatalf("failed to initialize kafka: %v", err)
	}
	defer kafkaServ.Close()

	notifierImpl := notifier.New(notesServ, kafkaServ)
	notifierImpl.Start()
}
