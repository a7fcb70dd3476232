package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/smileynet/fixpick/internal/config"
	"github.com/smileynet/fixpick/internal/fixup"
	"github.com/smileynet/fixpick/internal/gitlog"
	"github.com/smileynet/fixpick/internal/history"
	"github.com/smileynet/fixpick/internal/picker"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for fixpick.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Pick    PickCmd          `cmd:"" default:"1" help:"Pick a commit and create a fixup commit targeting it."`
}

// PickCmd browses the commit history interactively and creates a fixup
// commit for the confirmed selection.
type PickCmd struct {
	Dir    string `help:"Repository directory (overrides config)." default:""`
	DryRun bool   `help:"Print the selected commit instead of creating a fixup commit."`
}

// fallbackRows sizes the initial history fetch when the terminal size
// cannot be determined before the picker starts.
const fallbackRows = 24

// Run builds real dependencies and launches the picker.
func (p *PickCmd) Run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("pick: requires a terminal (TTY)")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("pick: %w", err)
	}
	if p.Dir != "" {
		cfg.Git.Dir = p.Dir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("pick: %w", err)
	}

	client := gitlog.NewClient(cfg.Git.Dir)
	if err := client.Check(); err != nil {
		return fmt.Errorf("pick: %w", err)
	}

	list := history.NewList(client)
	list.Grow(cfg.History.PageFactor * terminalRows())
	if list.Len() == 0 {
		// Empty history is not a failure: report and leave quietly.
		fmt.Fprintln(os.Stderr, "fixpick: no commits found")
		return nil
	}

	expansion := history.NewExpansion(client, cfg.UI.NoDescription)
	prog := tea.NewProgram(picker.NewModel(list, expansion), tea.WithAltScreen())
	return p.run(os.Stdout, prog, fixup.NewRunner(cfg.Git.Dir))
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// fixupRunner abstracts the fixup action for testing.
type fixupRunner interface {
	Apply(ctx context.Context, sha string) error
}

// run executes the tea program and applies the selection, enabling testable wiring.
func (p *PickCmd) run(w io.Writer, prog teaRunner, runner fixupRunner) error {
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("pick: %w", err)
	}

	m, ok := final.(picker.Model)
	if !ok {
		return fmt.Errorf("pick: unexpected final model %T", final)
	}
	selected, ok := m.Result()
	if !ok {
		// Cancelled: no action, exit silently.
		return nil
	}

	if p.DryRun {
		_, _ = fmt.Fprintln(w, selected.SHA)
		return nil
	}
	return runner.Apply(context.Background(), selected.SHA)
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/fixpick/config.yaml"),
		".fixpick.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// terminalRows returns the current terminal height, or fallbackRows when it
// cannot be read (the picker gets the real size later via WindowSizeMsg).
func terminalRows() int {
	_, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || rows <= 0 {
		return fallbackRows
	}
	return rows
}

// Exit codes.
const (
	exitSuccess = 0
	exitFixup   = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, fixup.ErrFixupFailed) {
		return exitFixup
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
