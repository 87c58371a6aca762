package cmd

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coregx/wildmatch/cache"
	"github.com/coregx/wildmatch/classify"
)

var (
	rulesPath string
	cachePath string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Score email fields with heuristic rules",
	Long: "Reads tab-separated lines from stdin — sender email, sender name,\n" +
		"subject, snippet (trailing fields optional) — and prints the winning\n" +
		"category and score per line.",
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&rulesPath, "rules", "", "YAML rule sets (default: built-in rules)")
	classifyCmd.Flags().StringVar(&cachePath, "cache", "", "bbolt file for caching results")
}

func runClassify(cmd *cobra.Command, args []string) error {
	classifier, revision, err := buildClassifier()
	if err != nil {
		return err
	}

	var store *cache.Store
	if cachePath != "" {
		store, err = cache.Open(cachePath, revision)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		res, err := scoreLine(classifier, store, line)
		if err != nil {
			return err
		}
		printResult(line, res)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

// buildClassifier loads rules from --rules when given, otherwise the
// built-in sets. The revision scopes the cache bucket: custom rule files
// get a bucket keyed by their content hash so edits invalidate cleanly.
func buildClassifier() (*classify.Classifier, string, error) {
	if rulesPath == "" {
		return classify.Default(), cache.DefaultRevision, nil
	}

	sets, err := classify.LoadRules(rulesPath)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(rulesPath)
	if err != nil {
		return nil, "", fmt.Errorf("read rules: %w", err)
	}
	sum := sha256.Sum256(data)
	revision := "rules-" + hex.EncodeToString(sum[:8])

	slog.Debug("loaded rules", "path", rulesPath, "sets", len(sets), "revision", revision)
	return classify.New(sets...), revision, nil
}

func scoreLine(classifier *classify.Classifier, store *cache.Store, line string) (classify.Result, error) {
	msg := parseMessage(line)

	if store != nil {
		if res, ok, err := store.Get(msg.ID); err != nil {
			return classify.Result{}, err
		} else if ok {
			slog.Debug("cache hit", "id", msg.ID)
			return res, nil
		}
	}

	res := classifier.Score(msg)

	if store != nil {
		if err := store.Put(msg.ID, res); err != nil {
			return classify.Result{}, err
		}
	}
	return res, nil
}

// parseMessage splits a tab-separated input line into message fields.
// Missing trailing fields stay empty. The message id is the content hash
// of the whole line.
func parseMessage(line string) classify.Message {
	sum := sha256.Sum256([]byte(line))
	msg := classify.Message{ID: hex.EncodeToString(sum[:16])}

	fields := strings.Split(line, "\t")
	if len(fields) > 0 {
		msg.SenderEmail = fields[0]
	}
	if len(fields) > 1 {
		msg.SenderName = fields[1]
	}
	if len(fields) > 2 {
		msg.Subject = fields[2]
	}
	if len(fields) > 3 {
		msg.Snippet = fields[3]
	}
	return msg
}

func printResult(line string, res classify.Result) {
	category := res.Category
	if category == "" {
		category = "none"
	}

	categoryColor(res.Category).Printf("%s\t%.2f", category, res.Score)
	fmt.Printf("\t%s\n", line)

	if verbose && len(res.Signals) > 0 {
		fmt.Printf("\tsignals: %s\n", strings.Join(res.Signals, ", "))
	}
}

func categoryColor(category string) *color.Color {
	switch category {
	case classify.CategoryMarketing:
		return color.New(color.FgYellow)
	case classify.CategorySpam:
		return color.New(color.FgRed)
	case classify.CategorySocial:
		return color.New(color.FgBlue)
	case classify.CategoryWork:
		return color.New(color.FgGreen)
	case classify.CategoryNewsletter, classify.CategoryUnsubscribe:
		return color.New(color.FgCyan)
	default:
		return color.New(color.Faint)
	}
}
