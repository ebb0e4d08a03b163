package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.hacdias.com/quill/log"
	"go.hacdias.com/quill/publisher"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the RSS, Atom and sitemap documents to the public directory",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	c, err := parseConfig()
	if err != nil {
		return err
	}

	defer func() {
		_ = log.L().Sync()
	}()

	report, err := publisher.NewFromConfig(c).Publish(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, filename := range report.Files {
		fmt.Fprintln(out, filepath.Join(c.PublicDirectory, filename))
	}
	fmt.Fprintf(out, "\n%d posts, %d files\n", report.Posts, len(report.Files))
	return nil
}
