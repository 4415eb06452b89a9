package commands

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/thoreinstein/matter/internal/errors"
)

// documentExtensions lists the file extensions treated as documents when
// walking directories. Files named directly on the command line are always
// accepted.
var documentExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdx":      true,
	".txt":      true,
}

// collectDocuments expands the given paths into a sorted list of document
// files. Directories are walked recursively; hidden directories are skipped.
func collectDocuments(args []string) ([]string, error) {
	var docs []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.NewUserError(err, "check the path exists and is readable")
		}

		if !info.IsDir() {
			docs = append(docs, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if documentExtensions[strings.ToLower(filepath.Ext(path))] {
				docs = append(docs, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walking %s", arg)
		}
	}

	sort.Strings(docs)
	return docs, nil
}

// readDocument reads a document file as a string.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewSystemError(err, "check file permissions")
	}
	return string(data), nil
}
