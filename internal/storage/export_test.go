// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/duet-tui/internal/model"
)

func exportFixture() *model.Transcript {
	tr := model.NewTranscript("Alice", "Bob")
	tr.Append("first line")
	tr.Append("second line")
	return tr
}

func TestExportMarkdown(t *testing.T) {
	tr := exportFixture()

	md := ExportMarkdown(tr)

	assert.Contains(t, md, "# Conversation "+tr.ID)
	assert.Contains(t, md, "**Alice** and **Bob**")
	assert.Contains(t, md, "**Alice** (")
	assert.Contains(t, md, "**Bob** (")
	assert.Contains(t, md, "first line")
	assert.Contains(t, md, "second line")
}

func TestExportText(t *testing.T) {
	tr := model.NewTranscript("Alice", "Bob")
	tr.Append("hello")
	tr.Append("hi")

	assert.Equal(t, "Alice: hello\nBob: hi\n", ExportText(tr))
}

func TestExportJSON(t *testing.T) {
	tr := exportFixture()

	data, err := ExportJSON(tr)
	require.NoError(t, err)

	var got model.Transcript
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, tr.ID, got.ID)
	assert.Equal(t, "Alice", got.LeftName)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "second line", got.Messages[1].Content)
	assert.Equal(t, model.SpeakerRight, got.Messages[1].Speaker)
}

func TestExportJSONEmptyTranscript(t *testing.T) {
	tr := model.NewTranscript("Alice", "Bob")

	data, err := ExportJSON(tr)
	require.NoError(t, err)

	var got model.Transcript
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Empty(t, got.Messages)
}
