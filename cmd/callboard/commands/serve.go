package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/callboard/callboard/internal/agentqueue"
	"github.com/callboard/callboard/internal/backend"
	"github.com/callboard/callboard/internal/config"
	"github.com/callboard/callboard/internal/dashboard"
	"github.com/callboard/callboard/internal/telephony"
)

func newServeCmd() *cobra.Command {
	var port int
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the callboard console server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				// Fall back to defaults if no config file
				cfg = config.Defaults()
			}

			if port != 0 {
				cfg.Server.Port = port
			}
			if bind != "" {
				cfg.Server.Bind = bind
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level := slog.LevelInfo
			switch cfg.Server.LogLevel {
			case "debug":
				level = slog.LevelDebug
			case "warn":
				level = slog.LevelWarn
			case "error":
				level = slog.LevelError
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			api := backend.NewClient(cfg.Backend.BaseURL)
			poller := agentqueue.New(api, time.Duration(cfg.Queue.PollIntervalSeconds)*time.Second, logger)
			phone := telephony.NewForm(telephony.TwilioConfig{
				SIPDomain:   cfg.Telephony.SIPDomain,
				Username:    cfg.Telephony.Username,
				Password:    cfg.Telephony.Password,
				Active:      cfg.Telephony.Active,
				Description: cfg.Telephony.Description,
			}, logger)

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			srv := dashboard.NewServer(cfg, api, poller, phone, registry, logger)
			printBanner(cfg, srv.AccessCode())

			// Graceful shutdown on SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			poller.Start(ctx)
			defer poller.Stop()

			bindAddr := cfg.Server.Bind
			if bindAddr == "" {
				bindAddr = "127.0.0.1"
			}
			httpSrv := &http.Server{
				Addr:    fmt.Sprintf("%s:%d", bindAddr, cfg.Server.Port),
				Handler: srv.Handler(),
			}

			errCh := make(chan error, 1)
			go func() {
				if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
					return
				}
				errCh <- nil
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override server port")
	cmd.Flags().StringVar(&bind, "bind", "", "address to bind (default: 127.0.0.1)")
	return cmd
}

func printBanner(cfg *config.Config, accessCode string) {
	bindAddr := cfg.Server.Bind
	if bindAddr == "" {
		bindAddr = "127.0.0.1"
	}

	fmt.Println()
	fmt.Println("  callboard console")
	fmt.Println("  ────────────────────────────────────────")
	fmt.Printf("  Console:    http://%s:%d/console\n", bindAddr, cfg.Server.Port)
	fmt.Printf("  Metrics:    http://%s:%d/metrics\n", bindAddr, cfg.Server.Port)
	fmt.Printf("  Backend:    %s\n", cfg.Backend.BaseURL)
	fmt.Println("  ────────────────────────────────────────")
	fmt.Printf("  Access code:  %s\n", accessCode)
	fmt.Println("  ────────────────────────────────────────")
	fmt.Printf("  Queue poll: every %ds\n", cfg.Queue.PollIntervalSeconds)
	fmt.Println()
	fmt.Println("  Enter this code in the browser to access the console.")
	fmt.Println("  Press Ctrl+C to stop.")
	fmt.Println()
}
