package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coregx/wildmatch"
)

var matchText string

var matchCmd = &cobra.Command{
	Use:   "match PATTERN...",
	Short: "Test whether any pattern is contained in text",
	Long: "Reads lines from stdin (or a single --text value) and reports for each\n" +
		"whether any of the given wildcard patterns is contained in it.\n" +
		"Exits non-zero when nothing matched.",
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchText, "text", "", "match against this text instead of stdin lines")
}

func runMatch(cmd *cobra.Command, args []string) error {
	slog.Debug("matching", "patterns", args)

	if matchText != "" {
		if !wildmatch.Match(matchText, args...) {
			return fmt.Errorf("no match")
		}
		color.New(color.FgGreen).Println("match")
		return nil
	}

	matched := false
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if wildmatch.Match(line, args...) {
			matched = true
			color.New(color.FgGreen).Printf("match\t%s\n", line)
		} else {
			color.New(color.FgRed).Printf("-\t%s\n", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if !matched {
		return fmt.Errorf("no match")
	}
	return nil
}
