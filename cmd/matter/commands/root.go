// Package commands implements the CLI commands for matter.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/cmd"
	"github.com/thoreinstein/matter/internal/config"
	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/logging"
	"github.com/thoreinstein/matter/pkg/matter"
)

// formatFlag holds the value of the -f/--format flag.
var formatFlag string

// delimiterFlag holds the value of the --delimiter flag.
var delimiterFlag string

// closeDelimiterFlag holds the value of the --close-delimiter flag.
var closeDelimiterFlag string

// excerptDelimiterFlag holds the value of the --excerpt-delimiter flag.
var excerptDelimiterFlag string

// configFlag holds the path given with --config.
var configFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// loadedConfig holds the configuration loaded during initialization.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "",
		"front matter format: yaml, toml, json")
	rootCmd.PersistentFlags().StringVar(&delimiterFlag, "delimiter", "",
		`front matter delimiter (default "---")`)
	rootCmd.PersistentFlags().StringVar(&closeDelimiterFlag, "close-delimiter", "",
		"closing delimiter when it differs from the opening one")
	rootCmd.PersistentFlags().StringVar(&excerptDelimiterFlag, "excerpt-delimiter", "",
		"delimiter ending the excerpt (excerpts disabled when empty)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"path to config file")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("matter version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	loadedConfig, configLoadErr = config.Load(configFlag)
}

var rootCmd = &cobra.Command{
	Use:   "matter",
	Short: "Extract, inspect and rebuild front matter in text documents",
	Long: `matter parses front matter out of text documents such as Markdown
files. It understands YAML, TOML and JSON blocks, can pull excerpts
from document bodies, and rebuilds documents from data and content.

Delimiters are configurable, so conventions like Hugo's "+++" TOML
blocks or HTML-comment front matter work as well as the usual "---".`,
	Example: `  # Print the front matter of a document
  matter show post.md

  # Validate every document under a directory
  matter check content/

  # Hugo-style TOML front matter
  matter show --format toml --delimiter +++ post.md

  # Rebuild a document from data and content
  matter compose --data meta.yaml --content body.md`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if configLoadErr != nil {
			return errors.NewUserError(configLoadErr, "check your config file syntax")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MATTER_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// parserFromFlags builds a parser from the loaded config with flag overrides
// applied on top.
func parserFromFlags() (*matter.Matter, error) {
	cfg := loadedConfig
	if cfg == nil {
		cfg = &config.Config{}
	}

	merged := *cfg
	if formatFlag != "" {
		merged.Format = formatFlag
	}
	if delimiterFlag != "" {
		merged.Delimiter = delimiterFlag
	}
	if closeDelimiterFlag != "" {
		merged.CloseDelimiter = closeDelimiterFlag
	}
	if excerptDelimiterFlag != "" {
		merged.ExcerptDelimiter = excerptDelimiterFlag
	}
	if merged.Format == "" {
		merged.Format = "yaml"
	}

	m, err := merged.Matter()
	if err != nil {
		return nil, errors.NewUserError(err, "valid formats are yaml, toml and json")
	}
	return m, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
