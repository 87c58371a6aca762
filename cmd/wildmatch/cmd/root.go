// Package cmd implements the wildmatch CLI.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-cz/devslog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wildmatch",
	Short: "wildmatch — wildcard matching and occurrence counting",
	Long: "Test glob-like patterns (literals with * and ? wildcards) against text,\n" +
		"count ordered occurrences, and score email fields with heuristic rules.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			Level: level,
		},
		SortKeys:          true,
		TimeFormat:        "[04:05]",
		StringerFormatter: true,
	}
	slog.SetDefault(slog.New(devslog.NewHandler(os.Stderr, opts)))
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(classifyCmd)
}
