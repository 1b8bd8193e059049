// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the two-party chat page for the TUI.
package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/duet-tui/internal/config"
	"github.com/jeranaias/duet-tui/internal/model"
	"github.com/jeranaias/duet-tui/internal/storage"
	"github.com/jeranaias/duet-tui/internal/ui/components"
	"github.com/jeranaias/duet-tui/internal/ui/styles"
	"github.com/jeranaias/duet-tui/internal/ui/tree"
)

// =============================================================================
// PAGE NODE
// =============================================================================

// page is the root of the component hierarchy. The header, transcript view,
// input bar, and status bar hang beneath it, so tree searches can locate any
// component from the root.
type page struct {
	tree.Branch
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the two-party chat page.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversation state
	transcript *model.Transcript
	dirty      bool // Unsaved changes exist

	// Persistence
	store    *storage.TranscriptStore
	autoSave bool

	// Component hierarchy
	page       *page
	header     *components.Header
	transcView *components.TranscriptView
	input      *components.InputBar
	status     *components.StatusBar

	// Key bindings
	keyMap KeyMap

	// Status
	statusMsg string
	lastErr   error

	quitting bool
}

// New assembles the chat page for a transcript. The store may be nil, in
// which case saving is disabled.
func New(cfg *config.Config, theme *styles.Theme, store *storage.TranscriptStore, t *model.Transcript) *Model {
	if t.MaxMessages == 0 {
		t.MaxMessages = cfg.Transcript.MaxMessages
	}

	header := components.NewHeader(theme, t.LeftName, t.RightName)
	transcView := components.NewTranscriptView(theme, cfg.UI.ShowTimestamps)
	transcView.SetTranscript(t)
	input := components.NewInputBar(theme, t.CurrentName())
	status := components.NewStatusBar(theme)
	status.SetTurn(t.Current, t.CurrentName())
	status.MessageCount = t.MessageCount()

	p := &page{}
	p.Attach(p, header)
	p.Attach(p, transcView)
	p.Attach(p, input)
	p.Attach(p, status)

	return &Model{
		theme:      theme,
		width:      80,
		height:     24,
		transcript: t,
		store:      store,
		autoSave:   cfg.Transcript.AutoSave,
		page:       p,
		header:     header,
		transcView: transcView,
		input:      input,
		status:     status,
		keyMap:     DefaultKeyMap(),
	}
}

// Init focuses the input.
func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Transcript returns the bound transcript.
func (m *Model) Transcript() *model.Transcript {
	return m.transcript
}

// Pending returns the pending message text in the input bar.
func (m *Model) Pending() string {
	return m.input.Value()
}

// SetPending replaces the pending message text.
func (m *Model) SetPending(text string) {
	m.input.SetValue(text)
}

// Dirty reports whether unsaved changes exist.
func (m *Model) Dirty() bool {
	return m.dirty
}

// Root returns the root of the component hierarchy for tree searches.
func (m *Model) Root() tree.Node {
	return m.page
}

// applyConfig picks up settings that can change while the TUI runs.
// Speaker names stay with the transcript they were started with.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.autoSave = cfg.Transcript.AutoSave
	if m.transcript != nil && cfg.Transcript.MaxMessages > 0 {
		m.transcript.MaxMessages = cfg.Transcript.MaxMessages
	}
	m.transcView.SetShowTimestamps(cfg.UI.ShowTimestamps)
}

// syncTurn pushes the transcript's current speaker into the input prompt
// and status bar.
func (m *Model) syncTurn() {
	name := m.transcript.CurrentName()
	m.input.SetSpeaker(name)
	m.status.SetTurn(m.transcript.Current, name)
	m.status.MessageCount = m.transcript.MessageCount()
	m.status.Dirty = m.dirty
}
