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

var countText string

var countCmd = &cobra.Command{
	Use:   "count PATTERN...",
	Short: "Count ordered pattern occurrences",
	Long: "Reads lines from stdin (or a single --text value) and prints the summed\n" +
		"occurrence-way count of the given wildcard patterns per line, then a total.",
	Args: cobra.MinimumNArgs(1),
	RunE: runCount,
}

func init() {
	countCmd.Flags().StringVar(&countText, "text", "", "count in this text instead of stdin lines")
}

func runCount(cmd *cobra.Command, args []string) error {
	slog.Debug("counting", "patterns", args)

	if countText != "" {
		fmt.Println(wildmatch.Count(countText, args...))
		return nil
	}

	bold := color.New(color.Bold)
	total := 0
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		n := wildmatch.Count(line, args...)
		total += n
		fmt.Printf("%d\t%s\n", n, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	bold.Printf("total\t%d\n", total)
	return nil
}
