package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	auction "github.com/brandonecarr/bidwars/internal/auctionService"
	"github.com/brandonecarr/bidwars/internal/config"
	"github.com/brandonecarr/bidwars/internal/events"
	"github.com/brandonecarr/bidwars/internal/ledger"
	"github.com/brandonecarr/bidwars/internal/repository"
	"github.com/brandonecarr/bidwars/internal/server"
	session "github.com/brandonecarr/bidwars/internal/sessionService"
	"github.com/brandonecarr/bidwars/utils"
)

func main() {
	cfg := config.Load()
	utils.SetLevel(cfg.LogLevel)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	repo, err := buildRepo(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up storage: %v\n", err)
		os.Exit(1)
	}

	hub := events.NewHub()
	led := ledger.NewLedger(repo)
	locks := auction.NewRoundLocks()

	sessionSvc := session.NewService(repo)
	coordinator := auction.NewCoordinator(repo, led, locks)
	rounds := auction.NewStateMachine(repo, led, hub, locks)

	router := server.SetupRouter(sessionSvc, coordinator, rounds, hub)

	fmt.Printf("Starting auction server on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepo picks Postgres when DATABASE_URL is set, in-memory otherwise
func buildRepo(cfg config.Config) (repository.AuctionDB, error) {
	if cfg.DatabaseURL != "" {
		utils.Info("using postgres storage", nil)
		return repository.NewPostgresRepo(cfg.DatabaseURL)
	}
	utils.Info("using in-memory storage", nil)
	return repository.NewMemoryRepo(), nil
}
