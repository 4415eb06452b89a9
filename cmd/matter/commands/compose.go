package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/paths"
	"github.com/thoreinstein/matter/pkg/engine"
	"github.com/thoreinstein/matter/pkg/pod"
)

var (
	composeDataPath    string
	composeContentPath string
	composeOutputPath  string
)

func init() {
	composeCmd.Flags().StringVar(&composeDataPath, "data", "",
		"file holding the front matter data (format inferred from extension)")
	composeCmd.Flags().StringVar(&composeContentPath, "content", "",
		"file holding the document body")
	composeCmd.Flags().StringVarP(&composeOutputPath, "output", "o", "",
		"write the document to a file instead of stdout")
	_ = composeCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(composeCmd)
}

var composeCmd = &cobra.Command{
	Use:   "compose --data <file> [--content <file>]",
	Short: "Build a document from front matter data and content",
	Long: `Encode a data file as a front matter block and prepend it to the
given content, producing a complete document.

The data file is decoded with the engine matching its extension
(.yaml, .toml or .json); the output block is encoded with the engine
selected by --format. Composing a document and parsing it again
yields the same data and content.

Examples:
  # YAML data above a Markdown body
  matter compose --data meta.yaml --content body.md

  # Hugo-style TOML block, written to a file
  matter compose --format toml --delimiter +++ --data meta.toml \
    --content body.md -o post.md`,
	Args: cobra.NoArgs,
	RunE: runCompose,
}

func runCompose(cobraCmd *cobra.Command, _ []string) error {
	m, err := parserFromFlags()
	if err != nil {
		return err
	}

	data, err := loadComposeData(composeDataPath)
	if err != nil {
		return err
	}

	var content string
	if composeContentPath != "" {
		content, err = readDocument(composeContentPath)
		if err != nil {
			return err
		}
		content = strings.TrimRight(content, " \t\r\n")
	}

	doc, err := m.Compose(data, content)
	if err != nil {
		return errors.NewUserError(err, "the data cannot be encoded as "+m.Engine().Name())
	}

	if composeOutputPath != "" {
		if err := paths.EnsureDir(filepath.Dir(composeOutputPath), 0o755); err != nil {
			return errors.NewSystemError(err, "check the output path is writable")
		}
		if err := os.WriteFile(composeOutputPath, []byte(doc), 0o644); err != nil {
			return errors.NewSystemError(err, "check the output path is writable")
		}
		return nil
	}

	fmt.Fprint(cobraCmd.OutOrStdout(), doc)
	return nil
}

// loadComposeData decodes a data file with the engine matching its extension.
func loadComposeData(path string) (pod.Pod, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	eng, err := engine.ForName(ext)
	if err != nil {
		return pod.Null(), errors.NewUserError(
			errors.Wrapf(err, "%s", path),
			"use a data file with a .yaml, .toml or .json extension")
	}

	raw, err := readDocument(path)
	if err != nil {
		return pod.Null(), err
	}

	data, err := eng.Decode(raw)
	if err != nil {
		return pod.Null(), errors.NewUserError(err, "")
	}
	return data, nil
}
