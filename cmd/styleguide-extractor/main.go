package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// flags holds every command-line option. Backend and log flags are shared by
// all commands and override the config file and environment.
type flags struct {
	configFile     string
	backendKind    string
	backendURL     string
	backendCommand []string
	timeout        int
	cacheTTL       int
	logFile        string
	debug          bool
	style          string

	url    string
	output string
	copy   bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "styleguide-extractor",
		Short:         "Generate a Markdown style guide from a website",
		Long:          "A tool to extract colors, typography, spacing and component styles from a website into a Markdown style guide",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, f)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.configFile, "config", "c", "", "YAML config file (optional)")
	pf.StringVar(&f.backendKind, "backend", "", "Backend kind: http or command")
	pf.StringVar(&f.backendURL, "backend-url", "", "Extraction service base URL")
	pf.StringSliceVar(&f.backendCommand, "backend-command", nil, "Extraction command and arguments, comma-separated (the URL is appended)")
	pf.IntVar(&f.timeout, "timeout", 0, "Backend timeout in seconds")
	pf.IntVar(&f.cacheTTL, "cache-ttl", 0, "Reuse extracted documents for this many seconds (0 = off)")
	pf.StringVar(&f.logFile, "log-file", "", "Log file path")
	pf.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	pf.StringVar(&f.style, "style", "", "Markdown display style: dark, light, notty, ascii")

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a style guide once and write it out",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, f)
		},
	}
	extractCmd.Flags().StringVarP(&f.url, "url", "u", "", "Website URL (required)")
	extractCmd.Flags().StringVarP(&f.output, "output", "o", "", "Output Markdown file (default: print to stdout)")
	extractCmd.Flags().BoolVar(&f.copy, "copy", false, "Copy the Markdown to the clipboard")
	extractCmd.MarkFlagRequired("url")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "styleguide-extractor version %s\n", version)
		},
	}

	rootCmd.AddCommand(extractCmd, versionCmd)
	return rootCmd
}
