package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/clientdir/internal/database"
	"github.com/inovacc/clientdir/internal/model"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfigFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("api-url", "", "")
	fs.Int("timeout", 0, "")
	fs.String("log-level", "", "")
	fs.String("log-format", "", "")
	fs.Bool("remote-persists-creates", false, "")

	return fs
}

func TestApplyFlags(t *testing.T) {
	fs := newConfigFlagSet()
	require.NoError(t, fs.Parse([]string{"--timeout", "7", "--remote-persists-creates"}))

	cfg := model.DefaultConfig()
	cfg.LogLevel = "info"

	require.NoError(t, applyFlags(fs, &cfg))

	assert.Equal(t, model.Config{
		APIURL:                model.DefaultAPIURL,
		TimeoutSeconds:        7,
		RemotePersistsCreates: true,
		LogLevel:              "info",
		LogFormat:             "text",
	}, cfg)
}

func TestApplyFlags_UnsetFlagsKeepValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("api-url", "", "")
	require.NoError(t, fs.Parse(nil))

	cfg := model.DefaultConfig()
	require.NoError(t, applyFlags(fs, &cfg))
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestAnyChanged(t *testing.T) {
	fs := newConfigFlagSet()
	assert.False(t, anyChanged(fs, configFlags))

	require.NoError(t, fs.Parse([]string{"--log-format=json"}))
	assert.True(t, anyChanged(fs, configFlags))
	assert.False(t, anyChanged(fs, []string{"missing"}))
}

func TestLoadDotEnv(t *testing.T) {
	const key = "CLIENTDIR_DOTENV_PROBE"

	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv(key))

	// a missing file is not an error
	require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestRunSetConfig(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), database.FileName))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	fs := newConfigFlagSet()
	require.NoError(t, fs.Parse([]string{"--api-url", "http://localhost:3000/users", "--log-level", "debug"}))

	var buf bytes.Buffer

	require.NoError(t, runSetConfig(&buf, db, fs))
	assert.Equal(t, "Configuration saved.\n", buf.String())

	stored, err := db.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/users", stored.APIURL)
	assert.Equal(t, "debug", stored.LogLevel)
	assert.Equal(t, model.DefaultTimeoutSeconds, stored.TimeoutSeconds)
}

func TestRunSetConfig_Invalid(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), database.FileName))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	fs := newConfigFlagSet()
	require.NoError(t, fs.Parse([]string{"--timeout", "-1"}))

	require.Error(t, runSetConfig(&bytes.Buffer{}, db, fs))

	has, err := db.HasConfig()
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStoredConfig(t *testing.T) {
	cfg, err := storedConfig(nil)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	db, err := database.Open(filepath.Join(t.TempDir(), database.FileName))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	cfg, err = storedConfig(db)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	saved := model.DefaultConfig()
	saved.TimeoutSeconds = 12
	require.NoError(t, db.SaveConfig(&saved))

	cfg, err = storedConfig(db)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 12, cfg.TimeoutSeconds)
}

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range GetRootCmd().Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"dashboard", "list", "show", "add", "edit", "delete", "configure", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}

	for _, flag := range []string{"api-url", "timeout", "log-level", "log-format", "log-file", "db"} {
		assert.NotNil(t, GetRootCmd().PersistentFlags().Lookup(flag), "missing flag %q", flag)
	}
}
