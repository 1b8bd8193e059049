// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the two-party chat page for the TUI.
//
// The page binds one Transcript to four components: a header naming the two
// speakers, a scrollable transcript view, an input bar for the pending
// message, and a status bar showing whose turn it is. The components form a
// tree rooted at the page, searchable with the tree package.
//
// # Interaction Model
//
// The input bar always holds the pending message for the current speaker.
//
//   - Enter sends the pending text, attributing it to the current speaker,
//     and flips the turn to the other speaker. Blank input is ignored.
//   - Tab flips the turn without sending anything; the typed text stays in
//     the input bar and is attributed to whoever sends it.
//   - Ctrl+S saves the transcript; Ctrl+L clears it.
//   - Esc or Ctrl+C quits.
//
// # Usage
//
//	t := model.NewTranscript("Alice", "Bob")
//	m := chat.New(cfg, theme, store, t)
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	_, err := p.Run()
package chat
