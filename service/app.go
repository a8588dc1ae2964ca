package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"travelshare/app/auth"
	"travelshare/app/config"
	"travelshare/app/events"
	"travelshare/app/logging"
	"travelshare/app/repositories"
	"travelshare/app/routes"
	"travelshare/app/services"
)

// publisher is the event sink owned by the App.
type publisher interface {
	services.EventPublisher
	Close() error
}

// App holds everything the HTTP server needs and the resources to release
// when it stops.
type App struct {
	Handler http.Handler

	store     *repositories.Store
	publisher publisher
}

// NewApp opens the store, connects the event publisher and wires the
// services into the router.
func NewApp(cfg *config.Config) (*App, error) {
	store, err := repositories.OpenStore(repositories.StoreOptions{
		Path:     cfg.Database.Path,
		InMemory: cfg.Database.InMemory,
	})
	if err != nil {
		return nil, err
	}

	var pub publisher = events.Noop{}
	if cfg.NATS.URL != "" {
		p, err := events.Connect(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
		if err != nil {
			store.Close()
			return nil, err
		}
		pub = p
	} else {
		logging.Info().Msg("NATS URL not set, reaction events are not published")
	}

	deps := routes.Dependencies{
		Health:      store.Ping,
		CORSOrigins: cfg.Server.CORSOrigins,
	}
	if cfg.Auth.Enabled {
		manager, err := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err != nil {
			pub.Close()
			store.Close()
			return nil, err
		}
		deps.Verifier = manager
	}

	publications, comments, reactions := store.Repositories()
	deps.Publications = services.NewPublicationService(publications)
	deps.Comments = services.NewCommentService(comments)
	deps.Reactions = services.NewReactionService(reactions, pub, cfg.Reactions.ReplaceMode)

	return &App{
		Handler:   routes.SetupRoutes(deps),
		store:     store,
		publisher: pub,
	}, nil
}

// Close releases the publisher and the store.
func (a *App) Close() error {
	return errors.Join(a.publisher.Close(), a.store.Close())
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within the configured timeout.
func Serve(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// RunAppServer starts the travelshare API and blocks until SIGINT or SIGTERM.
func RunAppServer() int {
	cfg := mustConfig()
	if cfg == nil {
		return 1
	}

	app, err := NewApp(cfg)
	if err != nil {
		logging.Error().Err(err).Msg("failed to start")
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			logging.Error().Err(err).Msg("failed to release resources")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Serve(ctx, cfg, app.Handler); err != nil {
		logging.Error().Err(err).Msg("server stopped")
		return 1
	}
	logging.Info().Msg("server stopped")
	return 0
}
