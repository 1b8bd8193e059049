// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the duet-tui application.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: display-width aware truncation (CJK counts as 2 columns)
//   - StringWidth, RuneLen: display width and character count
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
