// Package cmd wires configuration, logging, dialogs, and the task loop.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/logging"
	"github.com/nibzard/todo-go/internal/loop"
	"github.com/nibzard/todo-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todo program. It takes no arguments.
func Run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		printUsage(os.Stderr)
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	baseDir, err := programDir()
	if err != nil {
		return fmt.Errorf("locating program directory: %w", err)
	}

	cfg, err := config.Load(baseDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closer.Close()

	for _, warning := range cfg.Warnings {
		logger.Warn("config", "warning", warning)
	}
	logger.Debug("starting", "version", Version, "task_file", cfg.TaskFile, "theme", cfg.Theme, "config_files", cfg.Files)

	if !ui.IsTTY(os.Stdout) {
		return fmt.Errorf("todo requires a terminal")
	}

	theme, err := ui.NewTheme(cfg.Theme, nil)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}

	l := loop.New(ui.NewDialogs(theme), theme, cfg.TaskFile,
		loop.WithLogger(logger),
		loop.WithOutput(os.Stdout),
	)
	return l.Run(ctx)
}

// programDir returns the directory holding the running executable.
func programDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `todo %s - a terminal task list

Usage:
  todo

Tasks are kept in %s next to the executable.
Settings are read from %s next to the executable or in the user config directory.
`, Version, config.DefaultTaskFile, config.ConfigFileName)
}
