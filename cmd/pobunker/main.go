package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/data-center-bgp/po-bunker/infrastructure/activity"
	"github.com/data-center-bgp/po-bunker/infrastructure/auth"
	"github.com/data-center-bgp/po-bunker/infrastructure/backend"
	"github.com/data-center-bgp/po-bunker/infrastructure/cache"
	httpserver "github.com/data-center-bgp/po-bunker/infrastructure/http"
	"github.com/data-center-bgp/po-bunker/infrastructure/sqlite"
	"github.com/data-center-bgp/po-bunker/infrastructure/tokenstore"
)

func main() {
	_ = godotenv.Load()

	addr := getenv("APP_ADDR", ":8080")
	dbPath := getenv("SQLITE_PATH", "pobunker.db")
	backendURL := getenv("BACKEND_URL", "https://order.barokahperkasagroup.com")
	backendDB := getenv("BACKEND_DB", "po-bunker")

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	tokens, err := tokenstore.Open(context.Background(), db)
	if err != nil {
		log.Fatalf("open token store: %v", err)
	}

	sessions := auth.NewManager(tokens)
	client := backend.New(backendURL, backendDB, tokens)
	vessels := cache.NewVesselCache(5 * time.Minute)
	activitySvc := activity.NewService(db)

	server := httpserver.NewServer(addr, sessions, client, vessels, activitySvc)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("po-bunker dashboard listening on %s", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
