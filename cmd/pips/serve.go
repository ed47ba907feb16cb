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

	"github.com/spf13/cobra"

	"github.com/aretw0/pips"
	httpAdapter "github.com/aretw0/pips/internal/adapters/http"
	"github.com/aretw0/pips/internal/compiler"
	"github.com/aretw0/pips/internal/logging"
	"github.com/aretw0/pips/internal/metrics"
	"github.com/aretw0/pips/internal/solver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP solve server",
	Long: `Starts the solver in server mode, exposing the JSON solve API, the
browser UI and Prometheus metrics over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		solveTimeout, _ := cmd.Flags().GetDuration("solve-timeout")
		parallel, _ := cmd.Flags().GetInt("parallel")
		verbose, _ := cmd.Flags().GetBool("verbose")

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.NewJSON(level)

		eng := solver.New(
			solver.WithLogger(logger),
			solver.WithParallelism(parallel),
		)

		handler := httpAdapter.NewHandler(eng, compiler.NewParser(),
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(metrics.New()),
			httpAdapter.WithSolveTimeout(solveTimeout),
			httpAdapter.WithVersion(pips.Version),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("server starting", "addr", srv.Addr, "solve_timeout", solveTimeout)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("shutdown started", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("forced close failed", "err", err)
				}
			}
			logger.Info("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Duration("solve-timeout", 30*time.Second, "Per-request solve deadline")
	serveCmd.Flags().Int("parallel", 1, "Number of parallel search workers per request")
}
