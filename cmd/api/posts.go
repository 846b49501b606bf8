package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func newPostsCmd(opts *options, out io.Writer) *cobra.Command {
	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "Inspect blog posts without starting the server",
	}

	postsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the summaries of every post, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			posts, err := newPostService(cfg).ListPosts()
			if err != nil {
				return err
			}
			return writeJSON(out, posts)
		},
	})

	postsCmd.AddCommand(&cobra.Command{
		Use:   "show <slug>",
		Short: "Print one post with its body rendered to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			post, err := newPostService(cfg).GetPost(args[0])
			if err != nil {
				return err
			}
			return writeJSON(out, post)
		},
	})

	return postsCmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
