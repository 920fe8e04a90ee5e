package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"slidedeck/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var presentCmd = &cobra.Command{
	Use:   "present",
	Short: "Present the deck in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The alternate screen owns stdout; logs go to a file or nowhere.
		log.SetOutput(io.Discard)
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		s, err := setup(ctx)
		if err != nil {
			return err
		}
		if s.cfg.LogFile != "" {
			f, err := tea.LogToFile(s.cfg.LogFile, "slidedeck")
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()
		}
		defer shutdownTelemetry(s)

		app, err := ui.NewAppModel(s.deck, ui.DeckOptions{
			Labels:    s.cfg.ChromeLabels(s.deck.Meta().Language),
			Telemetry: s.tel,
			Verbose:   verbose,
		})
		if err != nil {
			return err
		}
		p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running terminal ui: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presentCmd)
}

func shutdownTelemetry(s *session) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.tel.Shutdown(ctx); err != nil {
		log.Printf("telemetry shutdown: %v", err)
	}
}
