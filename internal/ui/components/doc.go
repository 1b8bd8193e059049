// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the duet TUI.
//
// Every component embeds tree.Branch, so the assembled page forms a
// traversable hierarchy: the chat page is the root, with the header,
// transcript view, input bar, and status bar as children, and individual
// message bubbles under the transcript view. Code that needs a particular
// component can search for it with tree.FindDescendantOfType instead of
// threading references through every layer.
//
// # Key Components
//
//   - Header: title bar naming the two speakers
//   - TranscriptView: scrollable message history
//   - MessageBubble: a single speaker-colored message
//   - InputBar: text entry with the current speaker's prompt
//   - StatusBar: turn indicator, save state, and shortcuts
package components
