// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the two-party chat page for the TUI.
package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/duet-tui/internal/config"
	"github.com/jeranaias/duet-tui/internal/model"
	"github.com/jeranaias/duet-tui/internal/storage"
	"github.com/jeranaias/duet-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SaveResultMsg reports the outcome of a transcript save.
type SaveResultMsg struct {
	ID  string
	Err error
}

// clearStatusMsg expires a temporary status message.
type clearStatusMsg struct{}

// ConfigReloadedMsg arrives when the config file changed on disk.
// main sends it from the config watcher via Program.Send.
type ConfigReloadedMsg struct {
	Cfg *config.Config
}

// =============================================================================
// COMMANDS
// =============================================================================

// saveCmd persists the transcript in the background.
func saveCmd(store *storage.TranscriptStore, t *model.Transcript) tea.Cmd {
	snapshot := t.Clone()
	return func() tea.Msg {
		id, err := store.Save(snapshot)
		return SaveResultMsg{ID: id, Err: err}
	}
}

// clearStatusLater expires the status message after a short delay.
func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles all incoming events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SaveResultMsg:
		if msg.Err != nil {
			m.lastErr = msg.Err
			m.statusMsg = "save failed"
		} else {
			m.lastErr = nil
			m.dirty = false
			m.statusMsg = "saved " + msg.ID
		}
		m.syncTurn()
		return m, clearStatusLater()

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Cfg)
		m.statusMsg = "config reloaded"
		return m, clearStatusLater()
	}

	// Everything else feeds the input and viewport.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.transcView, cmd = m.transcView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleKey dispatches a key press.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.submit()

	case key.Matches(msg, m.keyMap.Switch):
		// Switch whose turn it is without sending the pending text.
		m.transcript.Toggle()
		m.syncTurn()
		return m, nil

	case key.Matches(msg, m.keyMap.Save):
		if m.store == nil {
			m.statusMsg = "saving disabled"
			return m, clearStatusLater()
		}
		return m, saveCmd(m.store, m.transcript)

	case key.Matches(msg, m.keyMap.Clear):
		m.transcript.Clear()
		m.dirty = true
		m.transcView.SetTranscript(m.transcript)
		m.syncTurn()
		return m, nil

	case key.Matches(msg, m.keyMap.Up),
		key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp),
		key.Matches(msg, m.keyMap.PageDown),
		key.Matches(msg, m.keyMap.End):
		var cmd tea.Cmd
		m.transcView, cmd = m.transcView.Update(msg)
		if key.Matches(msg, m.keyMap.End) {
			m.transcView.ScrollToBottom()
		}
		return m, cmd
	}

	// Everything else is text entry.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit appends the pending text as the current speaker and flips the turn.
// Blank input switches nothing and stays put.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.transcript.Append(text)
	m.input.Reset()
	m.dirty = true
	m.transcView.Refresh()
	m.transcView.ScrollToBottom()
	m.syncTurn()

	if m.autoSave && m.store != nil {
		return m, saveCmd(m.store, m.transcript)
	}
	return m, nil
}

// resize propagates new dimensions to every component.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	m.header.SetWidth(width)
	m.input.SetWidth(width)
	m.status.SetWidth(width)

	// Transcript gets the space between header, input, and status bar.
	chromeHeight := 4 // header box
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		chromeHeight = 1 // compact header
	}
	transcHeight := height - chromeHeight - 3 - 1
	if transcHeight < 3 {
		transcHeight = 3
	}
	m.transcView.SetSize(width, transcHeight)
}
