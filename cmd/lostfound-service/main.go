package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trouvaille/lostfound/internal/api"
	"github.com/trouvaille/lostfound/internal/auth"
	"github.com/trouvaille/lostfound/internal/config"
	"github.com/trouvaille/lostfound/internal/factory"
	"github.com/trouvaille/lostfound/internal/logger"
	"github.com/trouvaille/lostfound/internal/match"
	"github.com/trouvaille/lostfound/internal/services"
)

func main() {
	pretty := flag.Bool("pretty", false, "Human-readable console logs instead of JSON")
	flag.Parse()

	log := logger.New("lostfound-service")
	if *pretty {
		log = logger.NewPretty("lostfound-service")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Str("blob_driver", cfg.BlobDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Lost-and-found service starting…")

	ctx := context.Background()

	// -------- Storage layer -----------------
	st, err := factory.NewStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Record store unavailable")
	}
	defer func() { _ = st.Close() }()

	blobs, err := factory.NewBlobStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Blob store unavailable")
	}

	// -------- Services ----------------------
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	authSvc := services.NewAuthService(st.Users(), tokens, log)
	if err := authSvc.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("Admin bootstrap failed")
	}

	policy := match.Policy{
		MinSharedTokens: cfg.MatchMinSharedTokens,
		MinTokenLength:  cfg.MatchMinTokenLength,
		RequireDates:    cfg.MatchRequireDates,
	}
	itemSvc := services.NewItemService(st, blobs, policy, log)

	// Rebuild the relation at startup in case the policy changed since the
	// last run.
	if err := itemSvc.Rematch(ctx); err != nil {
		log.Fatal().Err(err).Msg("Initial match recompute failed")
	}

	// -------- Router & Server --------------
	router := api.NewRouter(api.Deps{
		Store:      st,
		Items:      itemSvc,
		Auth:       authSvc,
		Authorizer: auth.NewJWTAuthorizer(tokens, st.Users()),
		Log:        log,
	})
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
