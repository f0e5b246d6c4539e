package core

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/inovacc/clientdir/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := ResolveConfig(nil, envFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestResolveConfig_Layers(t *testing.T) {
	stored := &model.Config{
		APIURL:                "http://stored.local/clients",
		TimeoutSeconds:        10,
		RemotePersistsCreates: true,
		LogLevel:              "info",
	}

	cfg, err := ResolveConfig(stored, envFrom(map[string]string{
		EnvAPIURL:   " http://env.local/users ",
		EnvLogLevel: "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://env.local/users", cfg.APIURL)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.True(t, cfg.RemotePersistsCreates)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "unset stored fields fall back to defaults")
}

func TestResolveConfig_EnvOverridesBool(t *testing.T) {
	stored := &model.Config{RemotePersistsCreates: true}

	cfg, err := ResolveConfig(stored, envFrom(map[string]string{EnvRemotePersistsCreates: "false"}))
	require.NoError(t, err)
	assert.False(t, cfg.RemotePersistsCreates)
}

func TestResolveConfig_MalformedEnv(t *testing.T) {
	_, err := ResolveConfig(nil, envFrom(map[string]string{EnvTimeout: "soon"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvTimeout)

	_, err = ResolveConfig(nil, envFrom(map[string]string{EnvRemotePersistsCreates: "maybe"}))
	require.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Config)
		wantErr bool
	}{
		{"defaults", func(*model.Config) {}, false},
		{"relative url", func(c *model.Config) { c.APIURL = "/users" }, true},
		{"ftp url", func(c *model.Config) { c.APIURL = "ftp://x/users" }, true},
		{"zero timeout", func(c *model.Config) { c.TimeoutSeconds = 0 }, true},
		{"bad level", func(c *model.Config) { c.LogLevel = "loud" }, true},
		{"json format", func(c *model.Config) { c.LogFormat = "JSON" }, false},
		{"bad format", func(c *model.Config) { c.LogFormat = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := model.DefaultConfig()
			tt.mutate(&cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, Timeout(model.DefaultConfig()))
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLogLevel("")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := model.DefaultConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "info"

	logger := NewLogger(&buf, cfg)
	logger.Debug("hidden")
	logger.Info("shown", slog.Int("count", 3))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), out)
	assert.Contains(t, out, `"app":"clientdir"`)
	assert.Contains(t, out, `"count":3`)
}
