package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"teamfortasks/internal/config"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "teamfortasks",
		Short:         "Team for Tasks landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "optional .env file")

	root.AddCommand(newServeCmd(&envFile), newRenderCmd(&envFile))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
