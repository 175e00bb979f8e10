package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	logpkg "github.com/kailas-cloud/cardex/internal/logger"
)

func newExpandCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "expand TERM",
		Short: "Show the terms a benefit query expands to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := logpkg.NewLogger("cli")
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			catalog, err := loadCatalog(cfg, logger)
			if err != nil {
				return err
			}
			printTerms(cmd.OutOrStdout(), catalog.Expand(strings.Join(args, " ")))
			return nil
		},
	}
}
