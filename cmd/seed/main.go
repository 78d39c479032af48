package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-CoachingCalendar/internal/config"
	clientRepo "github.com/m04kA/SMC-CoachingCalendar/internal/infra/storage/client"
	"github.com/m04kA/SMC-CoachingCalendar/internal/integrations/calendarapi"
	"github.com/m04kA/SMC-CoachingCalendar/internal/seed"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	apiURL := flag.String("api", "http://localhost:8080", "calendar API base URL for sample bookings")
	withBookings := flag.Bool("bookings", true, "create sample bookings through the API")
	timeout := flag.Duration("timeout", 30*time.Second, "overall seeding timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Сидер пишет только в консоль
	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	clients := clientRepo.NewRepository(dbmetrics.Wrap(db, nil))

	var creator seed.BookingCreator
	if *withBookings {
		creator = calendarapi.NewClient(*apiURL, 10*time.Second, log)
	}

	res, err := seed.NewSeeder(clients, creator, log).Run(ctx)
	if err != nil {
		log.Fatal("Seeding failed: %v", err)
	}

	log.Info("Seeding finished: clients=%d, bookings created=%d, skipped=%d", res.Clients, res.Created, res.Skipped)
}
