package commands

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/envelope-zero/expenses/internal/config"
	v1 "github.com/envelope-zero/expenses/pkg/controllers/v1"
	"github.com/envelope-zero/expenses/pkg/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// shutdownTimeout is the time in-flight requests get to finish on shutdown.
const shutdownTimeout = 30 * time.Second

func newServeCommand(version string, load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			setupLogging(cfg, cmd.OutOrStdout())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, version)
		},
	}
}

// setupLogging configures gin and the global logger.
//
// The log format can be explicitly set. If it is not set, it defaults
// to human readable for development and JSON for release.
func setupLogging(cfg *config.Config, out io.Writer) {
	gin.SetMode(cfg.GinMode)

	output := out
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// serve runs the API until ctx is cancelled and then shuts it down.
func serve(ctx context.Context, cfg *config.Config, version string) error {
	l, db, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	opts := router.Options{
		AllowOrigins: cfg.CORSAllowOrigins,
		Pprof:        cfg.EnablePprof,
		Version:      version,
	}

	r, err := router.Config(cfg.URL(), opts)
	if err != nil {
		return err
	}
	router.AttachRoutes(v1.Controller{Ledger: l}, r.Group("/"), opts)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64KB
	}

	log.Info().Str("port", cfg.Port).Str("database", cfg.DBPath).Msg("Starting server")

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
		return err
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}
