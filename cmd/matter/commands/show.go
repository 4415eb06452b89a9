package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/pkg/engine"
)

var (
	showContent   bool
	showExcerpt   bool
	showRaw       bool
	showOutFormat string
)

func init() {
	showCmd.Flags().BoolVar(&showContent, "content", false, "print the document body instead of the data")
	showCmd.Flags().BoolVar(&showExcerpt, "excerpt", false, "print the excerpt instead of the data")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the raw front matter block instead of the data")
	showCmd.Flags().StringVar(&showOutFormat, "out-format", "json",
		"format the data is printed in: yaml, toml, json")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the front matter of a document",
	Long: `Parse a document and print its front matter as JSON, preserving the
key order of the original block.

Output modes (mutually exclusive):
  (default)   Front matter data, rendered per --out-format
  --content   Document body without the front matter block
  --excerpt   Document excerpt (requires --excerpt-delimiter)
  --raw       Raw front matter text, undecoded

Examples:
  # Show YAML front matter as JSON
  matter show post.md

  # Show the body of a Hugo TOML document
  matter show --format toml --delimiter +++ --content post.md

  # Pull the excerpt above the "<!-- more -->" marker
  matter show --excerpt-delimiter "<!-- more -->" --excerpt post.md`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateShowFlags,
	RunE:    runShow,
}

func validateShowFlags(_ *cobra.Command, _ []string) error {
	count := 0
	for _, f := range []bool{showContent, showExcerpt, showRaw} {
		if f {
			count++
		}
	}
	if count > 1 {
		return errors.New("flags --content, --excerpt, and --raw are mutually exclusive")
	}
	return nil
}

func runShow(cobraCmd *cobra.Command, args []string) error {
	return runShowWithWriter(cobraCmd.OutOrStdout(), args[0])
}

// runShowWithWriter allows injecting a writer for testing.
func runShowWithWriter(w io.Writer, path string) error {
	m, err := parserFromFlags()
	if err != nil {
		return err
	}

	input, err := readDocument(path)
	if err != nil {
		return err
	}

	ent, err := m.Parse(input)
	if err != nil {
		return errors.NewUserError(err, "the front matter block is not valid "+m.Engine().Name())
	}

	slog.Debug("parsed document",
		"path", path,
		"engine", m.Engine().Name(),
		"has_excerpt", ent.HasExcerpt,
	)

	switch {
	case showContent:
		fmt.Fprintln(w, ent.Content)
	case showExcerpt:
		if !ent.HasExcerpt {
			return errors.NewUserError(errors.Newf("%s: no excerpt found", path),
				"set --excerpt-delimiter to the marker used in the document")
		}
		fmt.Fprintln(w, ent.Excerpt)
	case showRaw:
		fmt.Fprint(w, ent.Matter)
	default:
		if ent.Data.IsNull() {
			return errors.NewUserError(errors.Newf("%s: no front matter found", path),
				"check the delimiter matches the document (default \"---\")")
		}
		outEng, err := engine.ForName(showOutFormat)
		if err != nil {
			return errors.NewUserError(err, "valid output formats are yaml, toml and json")
		}
		out, err := outEng.Encode(ent.Data)
		if err != nil {
			return errors.Wrap(err, "rendering front matter")
		}
		fmt.Fprint(w, out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Fprintln(w)
		}
	}

	return nil
}
