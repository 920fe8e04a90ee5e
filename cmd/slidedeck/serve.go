package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slidedeck/internal/web"

	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the deck to browsers",
	Long: `Start an HTTP server that presents the deck in the browser. Every
connected browser navigates independently.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := setup(ctx)
		if err != nil {
			return err
		}
		defer shutdownTelemetry(s)
		if serveAddr != "" {
			s.cfg.Serve.Addr = serveAddr
		}

		srv, err := web.New(s.deck, web.Options{
			Addr:           s.cfg.Serve.Addr,
			AllowedOrigins: s.cfg.Serve.AllowedOrigins,
			Language:       s.cfg.LanguageFor(s.deck.Meta().Language),
			Labels:         s.cfg.ChromeLabels(s.deck.Meta().Language),
			Telemetry:      s.tel,
			Verbose:        verbose,
		})
		if err != nil {
			return err
		}

		go func() {
			<-ctx.Done()
			log.Println("shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("shutdown: %v", err)
			}
		}()

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides serve.addr)")
	rootCmd.AddCommand(serveCmd)
}
