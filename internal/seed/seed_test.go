// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/arena-tui/internal/model"
)

// =============================================================================
// DEFAULT SEED TESTS
// =============================================================================

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	require.Len(t, s.Feed, 6)
	assert.Equal(t, int64(1), s.Feed[0].ID)
	assert.Equal(t, "Player123", s.Feed[0].Sender)

	require.Len(t, s.Threads, 3)
	assert.Equal(t, "Player123", s.Threads[0].Contact)
	assert.Equal(t, 2, s.Threads[0].Unread)
	assert.Equal(t, "Want to play a match?", s.Threads[0].LastMessage.Content)
	assert.Equal(t, 0, s.Threads[1].Unread)
	assert.Equal(t, 1, s.Threads[2].Unread)

	require.Len(t, s.Players, 6)
	assert.Equal(t, model.StatusInGame, s.Players[0].Status)
	assert.Equal(t, model.StatusOnline, s.Players[1].Status)
	assert.Equal(t, model.StatusInGame, s.Players[3].Status)

	require.Len(t, s.Logs, 4)
	assert.Equal(t, "3", s.Logs[2].ID)
	assert.Equal(t, model.LevelError, s.Logs[2].Level)
	assert.Equal(t, "Failed to connect to database", s.Logs[2].Message)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	a, err := Load("")
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

// =============================================================================
// FILE SEED TESTS
// =============================================================================

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[threads]]
contact = "Ace"
unread = 3
[threads.last_message]
id = 9
content = "yo"

[[logs]]
id = "a"
level = "warning"
message = "disk almost full"
source = "storage"
`), 0600))

	s, err := Load(path)
	require.NoError(t, err)

	require.Len(t, s.Threads, 1)
	assert.Equal(t, "Ace", s.Threads[0].LastMessage.Sender, "sender defaults to contact")
	assert.Equal(t, model.DefaultAvatar, s.Threads[0].LastMessage.Avatar)
	require.Len(t, s.Logs, 1)
	assert.Equal(t, model.LevelWarning, s.Logs[0].Level)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
feed:
  - id: 4
    sender: Ace
    content: first!
    sent_at: 1 min ago
players:
  - name: Ace
  - name: Bee
    status: Online
logs:
  - id: "1"
    level: success
    message: deploy finished
    source: ci
`), 0600))

	s, err := Load(path)
	require.NoError(t, err)

	require.Len(t, s.Feed, 1)
	assert.Equal(t, int64(4), s.Feed[0].ID)
	assert.Equal(t, model.DefaultAvatar, s.Feed[0].Avatar)
	assert.Equal(t, model.StatusInGame, s.Players[0].Status)
	assert.Equal(t, model.StatusOnline, s.Players[1].Status)
	assert.Equal(t, model.LevelSuccess, s.Logs[0].Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad level": `
[[logs]]
id = "1"
level = "fatal"
`,
		"duplicate contact": `
[[threads]]
contact = "Ace"
[[threads]]
contact = "Ace"
`,
		"missing contact": `
[[threads]]
unread = 1
`,
		"negative unread": `
[[threads]]
contact = "Ace"
unread = -1
`,
		"malformed": `[[logs`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seed.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

// =============================================================================
// WATCHER TESTS
// =============================================================================

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[logs]]\nid = \"1\"\nlevel = \"info\"\n"), 0600))

	reloaded := make(chan *Seed, 4)
	w, err := NewWatcher(path, 20*time.Millisecond, func(s *Seed, err error) {
		if err == nil {
			reloaded <- s
		}
	})
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	defer w.Close()

	// Unrelated files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(path, []byte("[[logs]]\nid = \"1\"\nlevel = \"info\"\n[[logs]]\nid = \"2\"\nlevel = \"error\"\n"), 0600))

	select {
	case s := <-reloaded:
		assert.Len(t, s.Logs, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload the seed")
	}
}

func TestWatcher_CloseIsClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	w, err := NewWatcher(path, 0, nil)
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	assert.NoError(t, w.Close())
}
