package commands

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/pkg/engine"
	"github.com/thoreinstein/matter/pkg/matter"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Fuzzy-find a document by its front matter",
	Long: `Open a fuzzy finder over the documents under the given path
(default "."). The preview pane shows each document's front matter.

The selected path is printed to stdout, which makes browse easy to
combine with other tools:

  vim "$(matter browse content/)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func runBrowse(cobraCmd *cobra.Command, args []string) error {
	m, err := parserFromFlags()
	if err != nil {
		return err
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	docs, err := collectDocuments([]string{root})
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return errors.NewUserError(errors.ErrNoDocuments, "no document files found under "+root)
	}

	idx, err := fuzzyfinder.Find(
		docs,
		func(i int) string {
			return docs[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return previewDocument(m, docs[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "fuzzy finder failed")
	}

	fmt.Fprintln(cobraCmd.OutOrStdout(), docs[idx])
	return nil
}

// previewDocument renders the preview pane for a document.
func previewDocument(m *matter.Matter, path string) string {
	input, err := readDocument(path)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	ent, err := m.Parse(input)
	if err != nil {
		return fmt.Sprintf("invalid front matter: %v", err)
	}
	if ent.Data.IsNull() {
		return "(no front matter)"
	}

	rendered, err := engine.JSON.Encode(ent.Data)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return rendered
}
