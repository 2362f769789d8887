package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/diegoclair/duty-rotation-bot/internal/config"
	"github.com/diegoclair/duty-rotation-bot/internal/database"
	"github.com/diegoclair/duty-rotation-bot/internal/domain/service"
	"github.com/diegoclair/duty-rotation-bot/internal/handlers"
	"github.com/diegoclair/duty-rotation-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)

	hour, minute := cfg.TriggerClock()
	services := service.NewInstance(database.NewInstance(db), slackClient, cfg.ExcludedUserIDs, service.Settings{
		ChannelID: cfg.DutyChannelID,
		FirstDay:  cfg.FirstTriggerDay,
		SecondDay: cfg.SecondTriggerDay,
		Hour:      hour,
		Minute:    minute,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loopDone := make(chan error, 1)
	go func() {
		loopDone <- services.Orchestrator.Run(ctx)
	}()

	handler := handlers.New(services.Roster, services.Orchestrator, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{Addr: ":" + cfg.Port}
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Block until shutdown signal or a fatal loop error
	select {
	case <-ctx.Done():
	case err := <-loopDone:
		if err != nil {
			log.Printf("Duty loop terminated: %v", err)
		}
		stop()
	}

	if err := server.Shutdown(context.Background()); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
}
