package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jlundholm/activity-finder/internal/api"
	"github.com/jlundholm/activity-finder/internal/config"
	"github.com/jlundholm/activity-finder/internal/database"
	"github.com/jlundholm/activity-finder/internal/stats"
	"github.com/joho/godotenv"
)

// Development-only defaults, override in production.
const (
	defaultAccessSecret = "c2Rmc2RzZDRmbGtqZHNmbGtkc2o="
	defaultIdSecret     = "ZmRrampscGFkZmdsZmQ2a3lldQ=="
)

var (
	addr         string
	dbPath       string
	accessSecret string
	idSecret     string
)

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func main() {
	// Pick up a local .env, if any, before flag defaults are resolved.
	godotenv.Load()

	flag.StringVar(&addr, "addr", envOr("AF_ADDR", "localhost:8000"), "server address")
	flag.StringVar(&dbPath, "db-path", envOr("AF_DB_PATH", "activity-finder.db"), "path to the database file")
	flag.StringVar(&accessSecret, "access-secret", envOr("AF_ACCESS_SECRET", defaultAccessSecret), "base64 encoded access token signing key")
	flag.StringVar(&idSecret, "id-secret", envOr("AF_ID_SECRET", defaultIdSecret), "base64 encoded id token signing key")
	flag.Parse()

	logger := log.New(os.Stderr, "[activity-finder] ", log.LstdFlags)

	cfg, err := config.NewConfig(addr, dbPath, accessSecret, idSecret)
	if err != nil {
		logger.Fatal("config:", err)
	}

	repo, err := database.NewSqliteFinderRepository(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("db open:", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Fatal("db close:", err)
		}
	}()

	mux := http.NewServeMux()

	statsUpdater := stats.NewStatsUpdater(mux)

	srv := api.NewFinderApp(mux, logger, repo, statsUpdater, cfg)

	statsUpdater.Run()
	defer statsUpdater.Stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		logger.Printf("received signal: %s\n", sig)
	case err := <-errCh:
		logger.Println("server:", err)
	}

	shutDownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutDownCtx); err != nil {
		logger.Fatalln("HTTP server shutdown:", err)
	}

	logger.Println("shutdown complete")
}
