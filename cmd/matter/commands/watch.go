package commands

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/pkg/matter"
)

var watchDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond,
		"wait this long after the last change before re-checking a file")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-validate documents as they change",
	Long: `Watch the given path (default ".") and re-validate the front matter
of any document that changes. Rapid successive writes, as editors
produce while saving, are debounced into a single check.

Runs until interrupted.

Examples:
  # Watch a content tree while editing
  matter watch content/

  # Hugo-style TOML documents
  matter watch --format toml --delimiter +++ content/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(cobraCmd *cobra.Command, args []string) error {
	m, err := parserFromFlags()
	if err != nil {
		return err
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	ctx, stop := signal.NotifyContext(cobraCmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := &watcher{
		parser:   m,
		out:      cobraCmd.OutOrStdout(),
		debounce: watchDebounce,
		pending:  make(map[string]*time.Timer),
	}
	return w.run(ctx, root)
}

// watcher re-checks changed documents with a per-file debounce.
type watcher struct {
	parser   *matter.Matter
	out      io.Writer
	debounce time.Duration
	pending  map[string]*time.Timer
}

func (w *watcher) run(ctx context.Context, root string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewSystemError(err, "file watching may not be supported on this system")
	}
	defer fsw.Close()

	if err := addRecursive(fsw, root); err != nil {
		return err
	}

	slog.Info("watching for changes", "path", root)

	for {
		select {
		case <-ctx.Done():
			slog.Info("stopping watcher")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fsw, event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "error", err)
		}
	}
}

func (w *watcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) {
	// New directories need to be added to the watch set.
	if event.Op.Has(fsnotify.Create) {
		if err := addRecursive(fsw, event.Name); err == nil {
			slog.Debug("watch set extended", "path", event.Name)
		}
	}

	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}
	if !documentExtensions[strings.ToLower(filepath.Ext(event.Name))] {
		return
	}

	slog.Debug("change detected", "file", event.Name, "op", event.Op.String())

	// Debounce per file: editors fire several writes per save.
	if timer, ok := w.pending[event.Name]; ok {
		timer.Stop()
	}
	path := event.Name
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.checkFile(path)
	})
}

func (w *watcher) checkFile(path string) {
	input, err := readDocument(path)
	if err != nil {
		slog.Error("reading changed file", "file", path, "error", err)
		return
	}

	ent, err := w.parser.Parse(input)
	switch {
	case err != nil:
		fmt.Fprintf(w.out, "FAIL %s: %v\n", path, err)
	case ent.Data.IsNull():
		fmt.Fprintf(w.out, "FAIL %s: no front matter\n", path)
	default:
		fmt.Fprintf(w.out, "ok   %s\n", path)
	}
}

// addRecursive watches path and, if it is a directory, every non-hidden
// directory under it.
func addRecursive(fsw *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.NewUserError(err, "check the path exists and is readable")
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		if err := fsw.Add(p); err != nil {
			return errors.Wrapf(err, "watching %s", p)
		}
		return nil
	})
}
