// Command migrate_session copies the persisted dashboard session from the
// local SQLite file to the configured PostgreSQL database.
package main

import (
	"log"

	"sms-dashboard/internal/config"
	"sms-dashboard/internal/database"
)

func main() {
	cfg := config.LoadConfig()

	srcCfg := *cfg
	srcCfg.SessionDriver = "sqlite"
	sqliteDB, err := database.Open(&srcCfg)
	if err != nil {
		log.Fatalf("Failed to connect to SQLite: %v", err)
	}
	log.Printf("Connected to SQLite at %s", cfg.DBPath)

	dstCfg := *cfg
	dstCfg.SessionDriver = "postgres"
	pgDB, err := database.Open(&dstCfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	log.Println("Migrating session entries...")
	n, err := database.CopySessions(sqliteDB, pgDB)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Migration completed: %d session entries copied", n)
}
