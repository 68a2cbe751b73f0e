package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAll fills the database with the default users and a small sample
// fleet. Existing rows are left untouched.
func SeedAll(db *pgxpool.Pool) {
	ctx := context.Background()

	if err := seedUsers(ctx, db); err != nil {
		log.Fatalf("seeding users failed: %v", err)
	}
	if err := seedEquipmentItems(ctx, db); err != nil {
		log.Fatalf("seeding equipment failed: %v", err)
	}

	log.Println("seeding finished")
}
