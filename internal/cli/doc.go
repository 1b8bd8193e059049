// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements argument parsing and the non-interactive
// commands for duet: list, show, search, export, delete, and config.
// The interactive TUI is launched from main; this package only
// decides which command runs and with what arguments.
//
// # Key Types
//
//   - Command: enum of top-level commands, CmdTUI is the default
//   - Args: parsed global and command-specific arguments
//   - ArgParser: shared flag/positional parsing for subcommands
//
// # Usage
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdList:
//	    err = cli.HandleList(args)
//	case cli.CmdTUI:
//	    // start bubbletea program
//	}
//
// Handlers honor NO_COLOR and detect whether stdout is a terminal, so
// piping "duet list" into another program produces plain text.
package cli
