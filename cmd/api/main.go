package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// @title           Personal Landing Page API
// @version         1.0.0
// @description     Blog, apps catalog and assistant chat for the personal landing page
//
// @license.name    MIT
//
// @host            localhost:8000
// @BasePath        /

var (
	// Version is injected at build time
	Version = "dev"
	// ProgramName is injected at build time
	ProgramName = "landing-api"
)

func main() {
	runMain(os.Args, os.Stdout, os.Exit)
}

func runMain(args []string, out io.Writer, exit func(int)) {
	if err := Execute(args[1:], out); err != nil {
		exit(1)
	}
}

// Execute is the entry point for the CLI, extracted for testing
func Execute(args []string, out io.Writer) error {
	rootCmd := newRootCmd(out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           ProgramName,
		Short:         "Personal landing page API",
		Long:          "Serves blog posts written as markdown files, the apps catalog and the assistant chat.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		// without a subcommand the API server starts
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(opts)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetVersionTemplate(`{{.Version}}
`)

	registerFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newPostsCmd(opts, out))

	return rootCmd
}

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(opts)
		},
	}
}
