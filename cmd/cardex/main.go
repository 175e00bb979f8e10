package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/cardex/internal/config"
	"github.com/kailas-cloud/cardex/internal/version"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	env        string
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:          "cardex",
		Short:        "Browse and compare credit card listings",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&g.env, "env", config.GetEnv(), "environment: local, dev, prod")
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "config file path (overrides --env lookup)")

	root.AddCommand(
		newServeCmd(g),
		newSearchCmd(g),
		newExpandCmd(g),
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			},
		},
	)
	return root
}

func (g *globalFlags) loadConfig() (config.Config, error) {
	if g.configPath != "" {
		return config.LoadFile(g.configPath)
	}
	return config.Load(g.env)
}
