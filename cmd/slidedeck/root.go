package main

import (
	"context"
	"fmt"
	"log"

	"slidedeck/internal/config"
	"slidedeck/internal/deck"
	"slidedeck/internal/telemetry"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	verbose  bool
	deckPath string
)

var rootCmd = &cobra.Command{
	Use:   "slidedeck",
	Short: "Present slide decks in the terminal or the browser",
	Long: `slidedeck presents a deck of slides one at a time with a progress bar,
a slide counter and previous/next controls. Decks are YAML files; without
one, the built-in LDAP introduction is shown.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return presentCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "slidedeck.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log slide transitions")
	rootCmd.PersistentFlags().StringVar(&deckPath, "deck", "", "deck YAML file (overrides config)")
}

// session bundles everything a host needs once flags and config are merged.
type session struct {
	cfg  *config.Config
	deck *deck.Deck
	tel  *telemetry.Provider
}

// setup loads configuration, the deck and the tracer.
func setup(ctx context.Context) (*session, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if deckPath != "" {
		cfg.Deck = deckPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	d, err := loadDeck(cfg.Deck)
	if err != nil {
		return nil, err
	}
	for _, f := range deck.Lint(d) {
		log.Printf("deck: %s", f)
	}

	tel, err := telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}
	return &session{cfg: cfg, deck: d, tel: tel}, nil
}

func loadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.Sample(), nil
	}
	return deck.Load(path)
}
