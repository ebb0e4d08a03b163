package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.hacdias.com/quill/core"
	"go.hacdias.com/quill/feeds"
	"go.hacdias.com/quill/render"
)

var (
	postsTag  string
	postsJSON bool
	postJSON  bool
	tagsTag   string
)

func init() {
	postsCmd.Flags().StringVarP(&postsTag, "tag", "t", "", "only list posts with this tag")
	postsCmd.Flags().BoolVar(&postsJSON, "json", false, "print the home page data as JSON")
	postCmd.Flags().BoolVar(&postJSON, "json", false, "print the post page data as JSON")
	tagsCmd.Flags().StringVarP(&tagsTag, "tag", "t", "", "list the posts with this tag instead")

	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(tagsCmd)
}

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List the posts, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseConfig()
		if err != nil {
			return err
		}

		index, err := core.NewRepositoryFromConfig(c).Index()
		if err != nil {
			return err
		}

		home := render.HomeFromIndex(index).Filter(postsTag)
		if postsJSON {
			return printJSON(cmd.OutOrStdout(), home)
		}

		printItems(cmd.OutOrStdout(), home.Posts)
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post <slug>",
	Short: "Show a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseConfig()
		if err != nil {
			return err
		}

		p, err := core.NewRepositoryFromConfig(c).GetPost(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		page, err := render.NewPostPage(p, feeds.FromSite(c.Site))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if postJSON {
			return printJSON(out, page)
		}

		fmt.Fprintln(out, page.Title)
		fmt.Fprintln(out, page.URL)
		fmt.Fprintf(out, "%s · %s · %d words\n", page.FormattedDate, page.ReadTime, page.WordCount)
		if len(page.Tags) > 0 {
			fmt.Fprintln(out, strings.Join(page.Tags, ", "))
		}
		fmt.Fprintf(out, "\n%s\n", page.Excerpt)
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tags in alphabetical order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseConfig()
		if err != nil {
			return err
		}

		repo := core.NewRepositoryFromConfig(c)
		out := cmd.OutOrStdout()

		if tagsTag != "" {
			posts, err := repo.ListPostsByTag(tagsTag)
			if err != nil {
				return err
			}

			printItems(out, render.Home(posts, nil).Posts)
			return nil
		}

		tags, err := repo.ListTags()
		if err != nil {
			return err
		}

		for _, tag := range tags {
			fmt.Fprintln(out, tag)
		}
		return nil
	},
}

func printItems(w io.Writer, items []render.ListItem) {
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Date, item.Slug, item.Title)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
