package main

import (
	"context"
	"log"

	"medequip-system/pkg/config"
	"medequip-system/pkg/database/postgresql"
	"medequip-system/seeders"
)

func main() {
	cfg := config.New()
	log.Println("using DSN:", cfg.Postgres.DSN)

	db, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if err := postgresql.Migrate(cfg.Postgres.DSN, "migrations"); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	seeders.SeedAll(db)
}
