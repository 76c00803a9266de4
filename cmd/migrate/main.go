package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"fulfilment/config"
	"fulfilment/internal/pkg/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Warning: .env file not found or failed to read. Loading configs from system environment only: %v", err)
	}

	cfg := config.LoadConfig()
	if cfg.StoreDriver != config.StoreDriverPostgres {
		log.Fatalf("goose: migrations require STORE_DRIVER=%s (got %q)", config.StoreDriverPostgres, cfg.StoreDriver)
	}

	var (
		migrationsDir string
		timeout       time.Duration
	)
	flag.StringVar(&migrationsDir, "dir", "./sql", "directory with migration files")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "initial connection timeout")
	flag.Parse()

	db, err := database.NewPostgresDB(cfg.DatabaseURL, timeout)
	if err != nil {
		log.Fatalf("goose: failed to connect to DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: failed to close DB: %v\n", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"} // Default to 'up' if no command is provided
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
