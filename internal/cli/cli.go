// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for duet.
//
// CLI: Comprehensive help and examples for all commands
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdList
	CmdShow
	CmdSearch
	CmdExport
	CmdDelete
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	LeftName      string // --left: display name for the left speaker
	RightName     string // --right: display name for the right speaker
	TranscriptDir string // --dir: override the transcript directory
	Resume        bool   // --resume: reopen the most recent transcript
	ASCII         bool   // --ascii: plain ASCII borders
	NoColor       bool   // --no-color: disable colored output
	JSON          bool   // --json: machine-readable output where supported

	// Command-specific
	TranscriptID string // transcript id for show/export/delete
	Format       string // export format: md, json, txt
	Output       string // export destination file ("" means stdout)
	Query        string // search query
	Confirm      bool   // --confirm for destructive commands
	ConfigKey    string
	ConfigVal    string
	Subcommand   string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `duet - two-party conversation TUI

Duet is a terminal app for writing a conversation between two
speakers, one keyboard. Press Enter to send as the current speaker
and pass the turn; press Tab to pass the turn without sending.

Usage:
  duet                        Start the TUI with a fresh transcript (default)
  duet --resume               Reopen the most recent transcript
  duet list                   List saved transcripts
  duet show <id>              Print a transcript to stdout
  duet search <query>         Search message text across transcripts
  duet export <id>            Export a transcript
    --format md|json|txt      Export format (default: txt)
    --output FILE             Write to file instead of stdout
  duet delete <id> --confirm  Delete a transcript
  duet config [show|set|path] Configuration
  duet version                Show version information
  duet help                   Show this help

Global flags:
  --left NAME       Display name for the left speaker
  --right NAME      Display name for the right speaker
  --dir PATH        Transcript directory (default: ~/.duet/transcripts)
  --resume          Reopen the most recent transcript
  --ascii           Use plain ASCII borders (screen-reader friendly)
  --no-color        Disable colored output
  --json            JSON output for list/search

Config Commands:
  duet config show                 Show effective configuration
  duet config set <key> <value>    Set a config value and save
  duet config path                 Print the config file path

  Keys: speakers.left_name, speakers.right_name, transcript.dir,
        transcript.max_messages, ui.theme, ui.ascii_borders

Environment:
  DUET_LEFT_NAME, DUET_RIGHT_NAME, DUET_TRANSCRIPT_DIR,
  DUET_MAX_MESSAGES, DUET_THEME, DUET_ASCII_BORDERS
  (environment overrides config file values)

Keyboard (inside the TUI):
  Enter      Send pending text as the current speaker, pass the turn
  Tab        Pass the turn without sending
  Ctrl+S     Save the transcript
  Ctrl+L     Clear the conversation
  Esc/Ctrl+C Quit

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("duet version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs is the testable core of Parse.
func parseArgs(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	// No remaining args: open the TUI
	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "list", "ls":
		return CmdList, args

	case "show", "cat":
		if len(remaining) > 0 {
			args.TranscriptID = remaining[0]
		}
		return CmdShow, args

	case "search", "find":
		parseSearchArgs(&args, remaining)
		return CmdSearch, args

	case "export":
		parseExportArgs(&args, remaining)
		return CmdExport, args

	case "delete", "rm":
		parseDeleteArgs(&args, remaining)
		return CmdDelete, args

	case "config":
		parseConfigArgs(&args, remaining)
		return CmdConfig, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		// Unknown command: restore it and fall back to the TUI
		args.Raw = append([]string{cmd}, remaining...)
		return CmdTUI, args
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var remaining []string
	var args Args

	i := 0
	for i < len(argv) {
		arg := argv[i]

		switch arg {
		case "--resume", "-r":
			args.Resume = true
		case "--ascii":
			args.ASCII = true
		case "--no-color":
			args.NoColor = true
		case "--json":
			args.JSON = true
		case "--left":
			if i+1 < len(argv) {
				i++
				args.LeftName = argv[i]
			}
		case "--right":
			if i+1 < len(argv) {
				i++
				args.RightName = argv[i]
			}
		case "--dir":
			if i+1 < len(argv) {
				i++
				args.TranscriptDir = argv[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--left="):
				args.LeftName = strings.TrimPrefix(arg, "--left=")
			case strings.HasPrefix(arg, "--right="):
				args.RightName = strings.TrimPrefix(arg, "--right=")
			case strings.HasPrefix(arg, "--dir="):
				args.TranscriptDir = strings.TrimPrefix(arg, "--dir=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, args
}

// parseSearchArgs joins the remaining positional args into the query.
func parseSearchArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.Query = strings.Join(parser.PositionalFrom(0), " ")
}

// parseExportArgs parses export command specific arguments.
func parseExportArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.TranscriptID = parser.Positional(0)
	args.Format = parser.FlagOrDefault("format", "txt")
	args.Output = parser.Flag("output")
	if out := parser.Flag("o"); args.Output == "" && out != "" {
		args.Output = out
	}
}

// parseDeleteArgs parses delete command specific arguments.
func parseDeleteArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.TranscriptID = parser.Positional(0)
	args.Confirm = parser.BoolFlag("confirm") || parser.BoolFlag("y")
}

// parseConfigArgs parses config subcommand, key and value.
func parseConfigArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.Subcommand = parser.Subcommand()
	args.ConfigKey = parser.Positional(1)
	args.ConfigVal = strings.Join(parser.PositionalFrom(2), " ")
}
