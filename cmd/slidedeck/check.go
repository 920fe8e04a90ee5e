package main

import (
	"fmt"

	"slidedeck/internal/config"
	"slidedeck/internal/deck"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [deck.yml]",
	Short: "Validate a deck file",
	Long: `Parse a deck and report lint findings. Without an argument the deck
from --deck or the config file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := deckPath
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			path = cfg.Deck
		}
		d, err := loadDeck(path)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		findings := deck.Lint(d)
		for _, f := range findings {
			fmt.Fprintln(out, f)
		}
		if len(findings) > 0 {
			return fmt.Errorf("%d problem(s) found", len(findings))
		}
		fmt.Fprintf(out, "ok: %d slides\n", d.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
