package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "clientdir"

	// EnvPrefix prefixes every environment variable the application reads
	EnvPrefix = "CLIENTDIR_"
)

// Version is overridden at build time with -ldflags "-X ...application.Version=...".
var Version = "0.1.0"

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the clientdir configuration directory path.
// Linux: ~/.config/clientdir (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\clientdir (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

// UserAgent is sent with every request to the collection endpoint.
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s/%s)", AppName, Version, runtime.GOOS, runtime.GOARCH)
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		// Linux/others: use ~/.config (via UserConfigDir)
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
