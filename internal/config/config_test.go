// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every ARENA_* override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ARENA_IDENTITY", "ARENA_SEED", "ARENA_SEED_WATCH", "ARENA_THEME", "ARENA_START_SCREEN", "ARENA_LOG_FILE"} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "You", cfg.Identity.Name)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "login", cfg.UI.StartScreen)
	assert.Equal(t, 4, cfg.UI.ToastSeconds)
	assert.True(t, cfg.Seed.Watch)
	assert.Empty(t, cfg.Seed.Path)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"bad start screen", func(c *Config) { c.UI.StartScreen = "lobby" }, "ui.start_screen"},
		{"toast too short", func(c *Config) { c.UI.ToastSeconds = 0 }, "ui.toast_seconds"},
		{"toast too long", func(c *Config) { c.UI.ToastSeconds = 61 }, "ui.toast_seconds"},
		{"name with newline", func(c *Config) { c.Identity.Name = "a\nb" }, "identity.name"},
		{"missing seed file", func(c *Config) { c.Seed.Path = "/nonexistent/seed.toml" }, "seed.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "neon"
	cfg.UI.StartScreen = "lobby"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
	assert.Contains(t, err.Error(), "ui.start_screen")
}

func TestSetDefaults(t *testing.T) {
	cfg := &Config{
		Identity: IdentityConfig{Name: "  "},
		UI:       UIConfig{Theme: " LIGHT "},
	}
	cfg.SetDefaults()

	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "You", cfg.Identity.Name)
	assert.Equal(t, "/placeholder.svg", cfg.Identity.Avatar)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "login", cfg.UI.StartScreen)
	assert.Equal(t, 4, cfg.UI.ToastSeconds)
}

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARENA_IDENTITY", "Ace")
	t.Setenv("ARENA_SEED", "/tmp/seed.yaml")
	t.Setenv("ARENA_SEED_WATCH", "false")
	t.Setenv("ARENA_THEME", "light")
	t.Setenv("ARENA_START_SCREEN", "chat")
	t.Setenv("ARENA_LOG_FILE", "/tmp/arena.log")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "Ace", cfg.Identity.Name)
	assert.Equal(t, "/tmp/seed.yaml", cfg.Seed.Path)
	assert.False(t, cfg.Seed.Watch)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "chat", cfg.UI.StartScreen)
	assert.Equal(t, "/tmp/arena.log", cfg.Log.File)
}

func TestApplyEnvOverrides_IgnoresBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARENA_SEED_WATCH", "sometimes")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.True(t, cfg.Seed.Watch)
}

func TestSaveTOMLAndLoadFromPath(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Identity.Name = "Ace"
	cfg.UI.Theme = "light"
	cfg.UI.StartScreen = "dashboard"
	require.NoError(t, SaveTOML(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# arena configuration file")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "Ace", loaded.Identity.Name)
	assert.Equal(t, "light", loaded.UI.Theme)
	assert.Equal(t, "dashboard", loaded.UI.StartScreen)
}

func TestSaveJSONAndLoadFromPath(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.UI.StartScreen = "chat"
	require.NoError(t, SaveJSON(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "chat", loaded.UI.StartScreen)
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "login", cfg.UI.StartScreen)
	assert.Equal(t, "You", cfg.Identity.Name)
}

func TestLoadFromPath_Invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[ui\n"), 0600))
	_, err := LoadFromPath(broken)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[ui]\ntheme = \"neon\"\n"), 0600))
	_, err = LoadFromPath(invalid)
	assert.ErrorContains(t, err, "ui.theme")
}

func TestLoad_FromHome(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	// No files: defaults.
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.Theme)

	// JSON only.
	require.NoError(t, EnsureConfigDir())
	jsonPath, err := ConfigPathJSON()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"ui":{"start_screen":"chat"}}`), 0600))
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "chat", cfg.UI.StartScreen)

	// TOML wins over JSON.
	tomlPath, err := ConfigPathTOML()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tomlPath, []byte("[ui]\nstart_screen = \"dashboard\"\n"), 0600))
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "dashboard", cfg.UI.StartScreen)

	// Env wins over files.
	t.Setenv("ARENA_START_SCREEN", "login")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "login", cfg.UI.StartScreen)
}

func TestLoad_BrokenFileFallsBack(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, EnsureConfigDir())

	tomlPath, err := ConfigPathTOML()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tomlPath, []byte("not = [valid"), 0600))

	cfg, err := Load()
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "dark", cfg.UI.Theme)
}
