// Package commands holds the cobra command tree of the travel binary.
// Wiring only; no business logic belongs here.
package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	logLevel  string
	envFile   string
	available bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "travel",
		Short: "Travel packages, destinations and activity sign-ups",
		Long: "Without a subcommand, travel runs the sample Beach Vacation scenario\n" +
			"and prints its reports. Use \"travel serve\" to start the HTTP API.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(opts.envFile); err != nil {
				return err
			}
			level, err := resolveLogLevel(opts.logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), opts.available)
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "minimum log level: debug, info, warn, error (overrides LOG_LEVEL)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.Flags().BoolVar(&opts.available, "available", false, "also print the activities that still have free places")

	root.AddCommand(newServeCmd(opts))
	return root
}

// loadEnvFile seeds the environment from path. A missing file is not an
// error; variables already set in the environment win.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// resolveLogLevel picks the flag value, then LOG_LEVEL, then info.
func resolveLogLevel(flag string) (slog.Level, error) {
	name := flag
	if name == "" {
		name = os.Getenv("LOG_LEVEL")
	}
	if name == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

// newLogger returns a JSON slog logger writing to w.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
