package application

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetApplicationDirectory(t *testing.T) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		t.Skipf("no user config directory available: %v", err)
	}

	require.Equal(t, AppName, filepath.Base(dir))

	again, err := GetApplicationDirectory()
	require.NoError(t, err)
	require.Equal(t, dir, again)
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()

	require.True(t, strings.HasPrefix(ua, "clientdir/"+Version+" ("), ua)
}
