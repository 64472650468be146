// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package seed supplies the static data the client starts from: the
// broadcast feed, the direct thread roster, the online players and the log
// corpus. A built-in seed is embedded; a user file in TOML or YAML may
// replace it.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/arena-tui/internal/model"
)

//go:embed default.toml
var defaultSeed []byte

// Seed is the full set of static data for one session.
type Seed struct {
	Feed    []model.Message      `toml:"feed" yaml:"feed"`
	Threads []model.DirectThread `toml:"threads" yaml:"threads"`
	Players []model.Player       `toml:"players" yaml:"players"`
	Logs    []model.LogEntry     `toml:"logs" yaml:"logs"`
}

// Default returns the built-in seed.
func Default() (*Seed, error) {
	s := &Seed{}
	if _, err := toml.NewDecoder(bytes.NewReader(defaultSeed)).Decode(s); err != nil {
		return nil, fmt.Errorf("failed to decode built-in seed: %w", err)
	}
	if err := s.normalize(); err != nil {
		return nil, fmt.Errorf("invalid built-in seed: %w", err)
	}
	return s, nil
}

// Load reads a seed file. An empty path returns the built-in seed.
// Files ending in .yaml or .yml are YAML; everything else is TOML.
func Load(path string) (*Seed, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	s := &Seed{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to decode YAML seed %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(data), s); err != nil {
			return nil, fmt.Errorf("failed to decode TOML seed %s: %w", path, err)
		}
	}

	if err := s.normalize(); err != nil {
		return nil, fmt.Errorf("invalid seed %s: %w", path, err)
	}
	return s, nil
}

// normalize fills display defaults and rejects data the core cannot hold.
func (s *Seed) normalize() error {
	for i := range s.Feed {
		if s.Feed[i].Avatar == "" {
			s.Feed[i].Avatar = model.DefaultAvatar
		}
	}

	seen := make(map[string]bool, len(s.Threads))
	for i := range s.Threads {
		t := &s.Threads[i]
		if t.Contact == "" {
			return fmt.Errorf("threads[%d]: contact is required", i)
		}
		if seen[t.Contact] {
			return fmt.Errorf("threads[%d]: duplicate contact %q", i, t.Contact)
		}
		seen[t.Contact] = true
		if t.Unread < 0 {
			return fmt.Errorf("threads[%d]: unread must be >= 0, got %d", i, t.Unread)
		}
		if t.LastMessage.Sender == "" {
			t.LastMessage.Sender = t.Contact
		}
		if t.LastMessage.Avatar == "" {
			t.LastMessage.Avatar = model.DefaultAvatar
		}
	}

	for i := range s.Players {
		if s.Players[i].Status == "" {
			s.Players[i].Status = model.RosterStatus(i)
		}
	}

	for i, e := range s.Logs {
		if !e.Level.Valid() {
			return fmt.Errorf("logs[%d]: unknown level %q", i, e.Level)
		}
	}

	return nil
}
