package main

import (
	"log"

	"sms-dashboard/internal/api"
	"sms-dashboard/internal/config"
	"sms-dashboard/internal/database"
	"sms-dashboard/internal/gateway"
	"sms-dashboard/internal/session"
	"sms-dashboard/internal/ws"
)

func main() {
	cfg := config.LoadConfig()

	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}

	hub := ws.NewHub(cfg.AllowedOrigins)
	go hub.Run()

	client := gateway.NewClient(cfg, store, hub)
	r := api.NewRouter(cfg, client, hub)

	log.Printf("Dashboard starting on port %s, backend %s", cfg.Port, client.BaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.SessionDriver == "memory" {
		log.Println("Session kept in memory; it will not survive a restart")
		return session.NewMemoryStore(), nil
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	return session.NewGormStore(db), nil
}
