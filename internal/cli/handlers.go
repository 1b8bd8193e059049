// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// handlers.go - Non-TUI command handlers for duet.
//
// Everything here prints to stdout and returns an error for main to
// report. The TUI itself is wired up in main, not here, because it
// owns the terminal for its whole lifetime.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jeranaias/duet-tui/internal/config"
	"github.com/jeranaias/duet-tui/internal/model"
	"github.com/jeranaias/duet-tui/internal/storage"
	"github.com/jeranaias/duet-tui/internal/util"
)

// OpenStore builds the transcript store from config plus CLI overrides.
// Flag beats environment beats config file.
func OpenStore(args Args) (*storage.TranscriptStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dir := args.TranscriptDir
	if dir == "" {
		dir, err = cfg.TranscriptDir()
		if err != nil {
			return nil, err
		}
	}

	return storage.NewTranscriptStoreWithDir(dir)
}

// =============================================================================
// LIST / SHOW / SEARCH
// =============================================================================

// HandleList lists saved transcripts, newest first.
func HandleList(args Args) error {
	store, err := OpenStore(args)
	if err != nil {
		return err
	}

	metas, err := store.List()
	if err != nil {
		return err
	}

	if args.JSON {
		return printJSON(metas)
	}

	if len(metas) == 0 {
		fmt.Println("No saved transcripts. Start one with: duet")
		return nil
	}

	fmt.Print(storage.FormatTranscriptList(metas))
	return nil
}

// HandleShow prints a transcript to stdout.
// With no id, shows the most recent transcript. On a TTY the
// markdown form is rendered; piped output is plain text.
func HandleShow(args Args) error {
	store, err := OpenStore(args)
	if err != nil {
		return err
	}

	t, err := loadTarget(store, args.TranscriptID)
	if err != nil {
		return err
	}

	if IsStdoutTTY() && ColorsEnabled() && !args.NoColor {
		fmt.Print(renderMarkdown(storage.ExportMarkdown(t)))
		return nil
	}

	fmt.Print(storage.ExportText(t))
	return nil
}

// HandleSearch searches message text across all saved transcripts.
func HandleSearch(args Args) error {
	if strings.TrimSpace(args.Query) == "" {
		return fmt.Errorf("search requires a query: duet search <query>")
	}

	store, err := OpenStore(args)
	if err != nil {
		return err
	}

	metas, err := store.SearchMessages(args.Query)
	if err != nil {
		return err
	}

	if args.JSON {
		return printJSON(metas)
	}

	if len(metas) == 0 {
		fmt.Printf("No transcripts match %q.\n", args.Query)
		return nil
	}

	fmt.Print(storage.FormatTranscriptList(metas))
	return nil
}

// =============================================================================
// EXPORT / DELETE
// =============================================================================

// HandleExport writes a transcript in the requested format.
// With no id, exports the most recent transcript.
func HandleExport(args Args) error {
	store, err := OpenStore(args)
	if err != nil {
		return err
	}

	t, err := loadTarget(store, args.TranscriptID)
	if err != nil {
		return err
	}

	var out []byte
	switch strings.ToLower(args.Format) {
	case "md", "markdown":
		out = []byte(storage.ExportMarkdown(t))
	case "json":
		out, err = storage.ExportJSON(t)
		if err != nil {
			return err
		}
	case "txt", "text", "":
		out = []byte(storage.ExportText(t))
	default:
		return fmt.Errorf("unknown export format %q (want md, json, or txt)", args.Format)
	}

	if args.Output == "" {
		fmt.Print(string(out))
		return nil
	}

	if err := util.AtomicWriteFile(args.Output, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", args.Output, err)
	}
	fmt.Printf("Exported %s to %s\n", t.ID, args.Output)
	return nil
}

// HandleDelete removes a saved transcript. Requires --confirm.
func HandleDelete(args Args) error {
	if args.TranscriptID == "" {
		return fmt.Errorf("delete requires a transcript id: duet delete <id> --confirm")
	}
	if !args.Confirm {
		return fmt.Errorf("refusing to delete %s without --confirm", args.TranscriptID)
	}

	store, err := OpenStore(args)
	if err != nil {
		return err
	}

	if err := store.Delete(args.TranscriptID); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args.TranscriptID)
	return nil
}

// loadTarget resolves an id to a transcript, defaulting to the latest.
func loadTarget(store *storage.TranscriptStore, id string) (*model.Transcript, error) {
	if id == "" {
		return store.LoadLatest()
	}
	return store.Load(id)
}

// =============================================================================
// CONFIG
// =============================================================================

// HandleConfig implements "duet config [show|set|path]".
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return configShow()
	case "set":
		return configSet(args.ConfigKey, args.ConfigVal)
	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand %q (want show, set, or path)", args.Subcommand)
	}
}

func configShow() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir, err := cfg.TranscriptDir()
	if err != nil {
		dir = "(unavailable)"
	}

	fmt.Println("duet configuration:")
	fmt.Printf("  speakers.left_name        %s\n", cfg.Speakers.LeftName)
	fmt.Printf("  speakers.right_name       %s\n", cfg.Speakers.RightName)
	fmt.Printf("  transcript.dir            %s\n", dir)
	fmt.Printf("  transcript.max_messages   %d\n", cfg.Transcript.MaxMessages)
	fmt.Printf("  transcript.auto_save      %t\n", cfg.Transcript.AutoSave)
	fmt.Printf("  ui.theme                  %s\n", cfg.UI.Theme)
	fmt.Printf("  ui.show_timestamps        %t\n", cfg.UI.ShowTimestamps)
	fmt.Printf("  ui.ascii_borders          %t\n", cfg.UI.ASCIIBorders)
	fmt.Printf("  ui.preview_length         %d\n", cfg.UI.PreviewLength)
	return nil
}

func configSet(key, value string) error {
	if key == "" {
		return fmt.Errorf("config set requires a key: duet config set <key> <value>")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := applyConfigKey(cfg, key, value); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

// applyConfigKey maps a dotted key to a config field.
func applyConfigKey(cfg *config.Config, key, value string) error {
	switch key {
	case "speakers.left_name":
		cfg.Speakers.LeftName = value
	case "speakers.right_name":
		cfg.Speakers.RightName = value
	case "transcript.dir":
		cfg.Transcript.Dir = value
	case "transcript.max_messages":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		cfg.Transcript.MaxMessages = n
	case "transcript.auto_save":
		b, err := ParseBoolString(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		cfg.Transcript.AutoSave = b
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.show_timestamps":
		b, err := ParseBoolString(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		cfg.UI.ShowTimestamps = b
	case "ui.ascii_borders":
		b, err := ParseBoolString(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		cfg.UI.ASCIIBorders = b
	case "ui.preview_length":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		cfg.UI.PreviewLength = n
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
