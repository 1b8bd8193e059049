// duet TUI - a two-party conversation writer for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/duet-tui/internal/cli"
	"github.com/jeranaias/duet-tui/internal/config"
	"github.com/jeranaias/duet-tui/internal/model"
	"github.com/jeranaias/duet-tui/internal/storage"
	"github.com/jeranaias/duet-tui/internal/ui/chat"
	"github.com/jeranaias/duet-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdList:
		exitOnError(cli.HandleList(args))
	case cli.CmdShow:
		exitOnError(cli.HandleShow(args))
	case cli.CmdSearch:
		exitOnError(cli.HandleSearch(args))
	case cli.CmdExport:
		exitOnError(cli.HandleExport(args))
	case cli.CmdDelete:
		exitOnError(cli.HandleDelete(args))
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(args))
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		runTUI(args)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the interactive conversation interface.
func runTUI(args cli.Args) {
	if err := cli.RequiresTTY("run the conversation UI"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Try a non-interactive command instead, e.g. duet list\n")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file and environment
	if args.LeftName != "" {
		cfg.Speakers.LeftName = args.LeftName
	}
	if args.RightName != "" {
		cfg.Speakers.RightName = args.RightName
	}
	if args.TranscriptDir != "" {
		cfg.Transcript.Dir = args.TranscriptDir
	}
	if args.ASCII {
		cfg.UI.ASCIIBorders = true
	}
	config.SetGlobal(cfg)

	if args.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(cli.GetColorProfile())
	}
	theme := styles.NewThemeFromConfig(cfg.UI.Theme, cfg.UI.ASCIIBorders)

	dir, err := cfg.TranscriptDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving transcript directory: %v\n", err)
		os.Exit(1)
	}
	store, err := storage.NewTranscriptStoreWithDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening transcript store: %v\n", err)
		os.Exit(1)
	}

	transcript, err := openTranscript(args, cfg, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := chat.New(cfg, theme, store, transcript)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Live config reload: edits to ~/.duet/config.toml reach the
	// running UI. Watcher failure is not fatal.
	_ = config.EnsureConfigDir()
	if watcher, err := config.NewWatcher(func(cfg *config.Config) {
		p.Send(chat.ConfigReloadedMsg{Cfg: cfg})
	}); err == nil {
		if err := watcher.Start(); err == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running duet: %v\n", err)
		os.Exit(1)
	}
}

// openTranscript picks the transcript the session starts with:
// a named one, the most recent with --resume, or a fresh one.
func openTranscript(args cli.Args, cfg *config.Config, store *storage.TranscriptStore) (*model.Transcript, error) {
	if args.TranscriptID != "" {
		return store.Load(args.TranscriptID)
	}

	if args.Resume {
		t, err := store.LoadLatest()
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, storage.ErrTranscriptNotFound) {
			return nil, err
		}
		// Nothing saved yet: fall through to a fresh transcript
	}

	return model.NewTranscript(cfg.Speakers.LeftName, cfg.Speakers.RightName), nil
}
