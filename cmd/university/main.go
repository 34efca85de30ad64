// main is the entry point of the university records manager.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional YAML file plus environment)
//  2. Initialise the logger
//  3. Create the in-memory registry
//  4. Run the interactive menu on stdin/stdout until the operator exits
//
// RUNNING:
//
//	go run ./cmd/university --config=config/local.yaml
//
// or, with no file at all:
//
//	ENV=dev go run ./cmd/university
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/university-manager/internal/config"
	"github.com/aanand-mishra/university-manager/internal/menu"
	"github.com/aanand-mishra/university-manager/internal/menu/prompt"
	"github.com/aanand-mishra/university-manager/internal/storage/memory"
	"github.com/aanand-mishra/university-manager/internal/utils/response"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "university",
		Short:        "Manage students, teachers and courses from an interactive menu",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			return run(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "",
		"path to the configuration YAML file (or CONFIG_PATH)")
	return cmd
}

func run(cfg *config.Config, in io.Reader, out io.Writer) error {
	logOut := io.Writer(os.Stderr)
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	log, err := setupLogger(cfg.Env, cfg.LogLevel, logOut)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	log.Info("starting university manager",
		slog.String("env", cfg.Env),
		slog.String("version", version),
	)

	reg := memory.New(log)
	session := prompt.NewSession(in, out, response.NewTheme(cfg.Shell.Color()))

	if err := menu.New(session, cfg.Shell.Prompt, menu.Options(reg), log).Run(); err != nil {
		log.Error("menu stopped", slog.String("error", err.Error()))
		return err
	}

	log.Info("university manager stopped",
		slog.Int("students", len(reg.GetAllStudents())),
		slog.Int("teachers", len(reg.GetAllTeachers())),
		slog.Int("courses", len(reg.GetAllCourses())),
	)
	return nil
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output.
// Staging and production: JSON output.
//
// level overrides the environment's default level (DEBUG for dev and
// staging, INFO for prod) when it is not empty.
func setupLogger(env, level string, w io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if env == "prod" {
		opts.Level = slog.LevelInfo
	}
	if level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		opts.Level = lvl
	}

	switch env {
	case "prod", "staging":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
}
