// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the duet TUI application.

This package defines the complete color palette and theme system used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Purple - Primary accent for headers and selections
  - Cyan - Brand color for shortcuts and highlights
  - Emerald - Success states and the saved indicator
  - Amber - Warnings and the unsaved-changes indicator
  - Rose - Errors and critical warnings

## Speaker Colors

Message bubbles use per-speaker color tokens:

	LeftBubbleBg   - Background for left-speaker messages
	LeftBubbleFg   - Text color for left-speaker messages
	RightBubbleBg  - Background for right-speaker messages
	RightBubbleFg  - Text color for right-speaker messages

## Text Colors

Hierarchical text color system:

	TextPrimary   - Main content text
	TextSecondary - Supporting text
	TextMuted     - De-emphasized text
	TextInverse   - Text on colored backgrounds

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}
	if theme.HasTrueColor {
		// Terminal supports 16M colors
	}

# Usage Example

	import "github.com/jeranaias/duet-tui/internal/ui/styles"

	// Use adaptive colors
	headerStyle := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextPrimary)

	// Use the theme for per-speaker rendering
	theme := styles.NewTheme()
	bubble := theme.BubbleFor(true) // left speaker
*/
package styles
