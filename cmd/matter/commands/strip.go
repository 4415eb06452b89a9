package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
)

var stripWrite bool

func init() {
	stripCmd.Flags().BoolVarP(&stripWrite, "write", "w", false,
		"rewrite files in place instead of printing to stdout")
	rootCmd.AddCommand(stripCmd)
}

var stripCmd = &cobra.Command{
	Use:   "strip <file>...",
	Short: "Remove front matter from documents",
	Long: `Print the body of each document with its front matter block removed.

With --write the files are rewritten in place. Documents without
front matter are passed through unchanged.

Examples:
  # Print a document body
  matter strip post.md

  # Strip a whole tree in place
  matter strip -w content/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStrip,
}

func runStrip(cobraCmd *cobra.Command, args []string) error {
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

	w := cobraCmd.OutOrStdout()
	for _, path := range docs {
		input, err := readDocument(path)
		if err != nil {
			return err
		}

		ent, err := m.Parse(input)
		if err != nil {
			return errors.NewUserError(errors.Wrapf(err, "%s", path),
				"the front matter block is not valid "+m.Engine().Name())
		}

		if !stripWrite {
			fmt.Fprintln(w, ent.Content)
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		if err := os.WriteFile(path, []byte(ent.Content+"\n"), info.Mode().Perm()); err != nil {
			return errors.NewSystemError(err, "check file permissions")
		}
	}

	return nil
}
