package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr069-model/tr069-go/pkg/wire"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tr069.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Device", cfg.Model)
	assert.Equal(t, "xml", cfg.Format)
	assert.Equal(t, "  ", cfg.Indent)
	assert.Empty(t, cfg.EventLog)
	assert.False(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
MODEL    = InternetGatewayDevice
schema   = /etc/tr069/igd.yaml
Format   = yaml
indent   = 4
eventlog = /var/log/tr069/events.cbor
verbose  = true

[shell]
history = /tmp/tr069_history
`)

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "InternetGatewayDevice", cfg.Model)
	assert.Equal(t, "/etc/tr069/igd.yaml", cfg.Schema)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "    ", cfg.Indent)
	assert.Equal(t, "/var/log/tr069/events.cbor", cfg.EventLog)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "/tmp/tr069_history", cfg.History)
}

func TestLoadFromFileKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromFile(writeConfig(t, "format = json\n")))

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "Device", cfg.Model)
	assert.Equal(t, "  ", cfg.Indent)
}

func TestLoadFromFileIndent(t *testing.T) {
	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{"0", "", false},
		{"2", "  ", false},
		{"tab", "\t", false},
		{"none", "", false},
		{"17", "", true},
		{"-1", "", true},
		{"wide", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.LoadFromFile(writeConfig(t, "indent = "+tt.value+"\n"))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Indent)
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.LoadFromFile(filepath.Join(t.TempDir(), "missing.ini"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TR069_MODEL", "InternetGatewayDevice")
	t.Setenv("TR069_FORMAT", "cbor")
	t.Setenv("TR069_VERBOSE", "1")
	t.Setenv("TR069_EVENTLOG", "events.cbor")

	cfg := DefaultConfig()
	cfg.LoadFromEnv()

	assert.Equal(t, "InternetGatewayDevice", cfg.Model)
	assert.Equal(t, "cbor", cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "events.cbor", cfg.EventLog)
}

func TestNew(t *testing.T) {
	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("TR069_FORMAT", "bson")
		cfg, err := New(writeConfig(t, "format = yaml\nmodel = InternetGatewayDevice\n"))
		require.NoError(t, err)
		assert.Equal(t, "bson", cfg.Format)
		assert.Equal(t, "InternetGatewayDevice", cfg.Model)
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := New(filepath.Join(t.TempDir(), "nope.ini"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("no file", func(t *testing.T) {
		cfg, err := New("")
		require.NoError(t, err)
		assert.Equal(t, "xml", cfg.Format)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := New(writeConfig(t, "format = toml\n"))
		assert.ErrorIs(t, err, wire.ErrUnknownFormat)
	})

	t.Run("bad indent", func(t *testing.T) {
		_, err := New(writeConfig(t, "indent = lots\n"))
		assert.Error(t, err)
	})
}
