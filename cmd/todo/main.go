package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/ops"
	"github.com/hpungsan/todo/internal/prompt"
	"github.com/hpungsan/todo/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

var _ ops.Prompter = (*prompt.Prompter)(nil)

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// globalConfigDir returns ~/.todo, or "" when there is no home directory.
func globalConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, config.DirName)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fail("could not determine working directory: %v", err)
	}

	cfg, err := config.LoadWithRepo(globalConfigDir(), cwd)
	if err != nil {
		fail("failed to load config: %v", err)
	}

	logger, console := newLogger(os.Stderr, cfg.LogLevel)

	st, err := store.New(cwd, store.WithFileName(cfg.StoreFile), store.WithLogger(logger))
	if err != nil {
		fail("%v", err)
	}

	p := prompt.New(os.Stdin, os.Stdout)
	app := newCLIApp(&deps{st: st, cfg: cfg, prompter: p, console: console})

	args := os.Args
	// No command in a terminal → pick one from the menu
	if len(args) < 2 && isTerminal() {
		chosen, err := chooseCommand(p)
		if err != nil {
			fail("%v", outputError(err))
		}
		args = append([]string{args[0]}, chosen...)
	}

	if err := app.Run(args); err != nil {
		fail("%v", err)
	}
}
