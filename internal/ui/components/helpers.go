// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/duet-tui/internal/util"
)

// wordWrap wraps text at word boundaries to the given display width.
// Words longer than the width are hard-broken. Existing newlines are
// preserved.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var lines []string
	current := ""
	for _, word := range words {
		// Hard-break words wider than the full line.
		for util.StringWidth(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			// UNICODE: cut by display width, not rune count, so a run of
			// double-width characters never overshoots the line.
			head := util.TruncateWidthNoEllipsis(word, width)
			if head == "" {
				// A double-width rune cannot fit a one-column line;
				// emit it anyway rather than looping forever.
				head = string([]rune(word)[:1])
			}
			lines = append(lines, head)
			word = strings.TrimPrefix(word, head)
		}
		if word == "" {
			continue
		}

		if current == "" {
			current = word
		} else if util.StringWidth(current)+1+util.StringWidth(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// maxLineWidth returns the widest display width of the lines in text.
func maxLineWidth(text string) int {
	maxW := 0
	for _, line := range strings.Split(text, "\n") {
		if w := util.StringWidth(line); w > maxW {
			maxW = w
		}
	}
	return maxW
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
