package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
)

var checkAllowMissing bool

func init() {
	checkCmd.Flags().BoolVar(&checkAllowMissing, "allow-missing", false,
		"treat documents without front matter as valid")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Validate front matter across documents",
	Long: `Parse every document under the given paths and report whether its
front matter decodes cleanly.

Directories are walked recursively. Documents without a front matter
block fail the check unless --allow-missing is set.

The exit code is non-zero when any document fails.

Examples:
  # Validate a content tree
  matter check content/

  # Only require that present blocks are valid
  matter check --allow-missing docs/ README.md`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cobraCmd *cobra.Command, args []string) error {
	return runCheckWithWriter(cobraCmd.OutOrStdout(), args)
}

// runCheckWithWriter allows injecting a writer for testing.
func runCheckWithWriter(w io.Writer, args []string) error {
	m, err := parserFromFlags()
	if err != nil {
		return err
	}

	docs, err := collectDocuments(args)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return errors.NewUserError(errors.ErrNoDocuments, "no document files found under the given paths")
	}

	okMark := color.New(color.FgGreen).Sprint("ok")
	failMark := color.New(color.FgRed, color.Bold).Sprint("FAIL")

	failures := 0
	for _, path := range docs {
		input, err := readDocument(path)
		if err != nil {
			return err
		}

		ent, err := m.Parse(input)
		switch {
		case err != nil:
			failures++
			fmt.Fprintf(w, "%s %s: %v\n", failMark, path, err)
		case ent.Data.IsNull() && !checkAllowMissing:
			failures++
			fmt.Fprintf(w, "%s %s: no front matter\n", failMark, path)
		default:
			if !quiet {
				fmt.Fprintf(w, "%s   %s\n", okMark, path)
			}
		}
	}

	slog.Debug("check finished", "documents", len(docs), "failures", failures)

	if failures > 0 {
		return errors.NewUserError(
			errors.Newf("%d of %d documents failed", failures, len(docs)), "")
	}
	return nil
}
