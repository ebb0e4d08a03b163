package main

import (
	"github.com/spf13/cobra"
	"go.hacdias.com/quill/core"
	"go.hacdias.com/quill/log"
)

var version = "dev"

var (
	configFile string
	debug      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file (default is ./quill.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.SetVersionTemplate("quill version {{.Version}}\n")
}

var rootCmd = &cobra.Command{
	Use:               "quill",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "Quill publishes the feeds of a blog written in MDX",
	Version:           version,
	SilenceUsage:      true,
	Args:              cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetDebug(true)
		}
	},
	RunE: runBuild,
}

func parseConfig() (*core.Config, error) {
	return core.ParseConfig(configFile)
}
