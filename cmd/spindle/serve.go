package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/aretw0/spindle/internal/logging"
	spindlehttp "github.com/aretw0/spindle/pkg/adapters/http"
	redisstore "github.com/aretw0/spindle/pkg/adapters/redis"
	"github.com/aretw0/spindle/pkg/persistence/middleware"
	"github.com/aretw0/spindle/pkg/registry"
)

// serveConfig is loaded from the environment; flags override Addr.
type serveConfig struct {
	Addr          string        `env:"SPINDLE_ADDR" envDefault:":8080"`
	RedisAddr     string        `env:"SPINDLE_REDIS_ADDR"`
	RedisPassword string        `env:"SPINDLE_REDIS_PASSWORD"`
	RedisDB       int           `env:"SPINDLE_REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"SPINDLE_CACHE_TTL" envDefault:"0"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the stateless HTTP server, exposing machine execution as a JSON API.

When SPINDLE_REDIS_ADDR is set, run outcomes are memoized in Redis so
repeated runs of the same machine and input are served from the cache.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg serveConfig
		if err := env.Parse(&cfg); err != nil {
			fmt.Printf("Error parsing environment: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}

		logger := logging.New(slog.LevelInfo)

		opts := []spindlehttp.Option{spindlehttp.WithLogger(logger)}
		if cfg.RedisAddr != "" {
			store := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
				redisstore.WithTTL(cfg.CacheTTL))
			defer store.Close()
			opts = append(opts, spindlehttp.WithOutcomeStore(
				middleware.Chain(store, middleware.NewLoggingMiddleware(logger))))
			logger.Info("Outcome cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
		}

		handler := spindlehttp.NewHandler(registry.NewFromCatalog(), opts...)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Spindle Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Spindle Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
