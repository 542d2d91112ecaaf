package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/desknotify/internal/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultAppName, cfg.App.Name)
	assert.Equal(t, DefaultUrgency, cfg.Send.Urgency)
	assert.Equal(t, DefaultTimeout, cfg.Send.Timeout)
	assert.False(t, cfg.Send.Sound)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[app]
name = "myapp"
icon = "mail-unread"
limit = 5

[send]
urgency = "critical"
timeout = 10
sound = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "myapp", cfg.App.Name)
	assert.Equal(t, "mail-unread", cfg.App.Icon)
	assert.Equal(t, 5, cfg.App.Limit)
	assert.Equal(t, "critical", cfg.Send.Urgency)
	assert.Equal(t, 10, cfg.Send.Timeout)
	assert.True(t, cfg.Send.Sound)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[app]\nname = \"myapp\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "myapp", cfg.App.Name)
	assert.Equal(t, DefaultUrgency, cfg.Send.Urgency)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[app\n"},
		{"bad urgency", "[send]\nurgency = \"shouty\"\n"},
		{"bad timeout", "[send]\ntimeout = -2\n"},
		{"negative limit", "[app]\nlimit = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestParseIcon(t *testing.T) {
	assert.Nil(t, ParseIcon(""))
	assert.Equal(t, model.IconFromName("mail-unread"), ParseIcon("mail-unread"))
	assert.Equal(t, model.IconFromPath("/tmp/icon.png"), ParseIcon("/tmp/icon.png"))
	assert.Equal(t, model.IconFromPath("./icon.png"), ParseIcon("./icon.png"))
	assert.Equal(t, model.IconFromURI("file:///tmp/icon.png"), ParseIcon("file:///tmp/icon.png"))
}
