package core

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/inovacc/clientdir/internal/application"
	"github.com/inovacc/clientdir/internal/model"
)

// Environment variables read by ResolveConfig.
const (
	EnvAPIURL                = application.EnvPrefix + "API_URL"
	EnvTimeout               = application.EnvPrefix + "TIMEOUT"
	EnvRemotePersistsCreates = application.EnvPrefix + "REMOTE_PERSISTS_CREATES"
	EnvLogLevel              = application.EnvPrefix + "LOG_LEVEL"
	EnvLogFormat             = application.EnvPrefix + "LOG_FORMAT"
)

// ResolveConfig layers the stored configuration over the defaults and the
// environment over both. A nil stored config means nothing was saved. Unset
// or empty values fall through to the layer below; malformed ones are
// reported.
func ResolveConfig(stored *model.Config, getenv func(string) string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if stored != nil {
		cfg = MergeConfig(cfg, *stored)
	}

	if v := strings.TrimSpace(getenv(EnvAPIURL)); v != "" {
		cfg.APIURL = v
	}

	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}

		cfg.TimeoutSeconds = n
	}

	if v := strings.TrimSpace(getenv(EnvRemotePersistsCreates)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvRemotePersistsCreates, v, err)
		}

		cfg.RemotePersistsCreates = b
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	if v := strings.TrimSpace(getenv(EnvLogFormat)); v != "" {
		cfg.LogFormat = v
	}

	return cfg, nil
}

// MergeConfig overlays the non-zero fields of top onto base.
// RemotePersistsCreates always comes from top.
func MergeConfig(base, top model.Config) model.Config {
	if top.APIURL != "" {
		base.APIURL = top.APIURL
	}

	if top.TimeoutSeconds > 0 {
		base.TimeoutSeconds = top.TimeoutSeconds
	}

	base.RemotePersistsCreates = top.RemotePersistsCreates

	if top.LogLevel != "" {
		base.LogLevel = top.LogLevel
	}

	if top.LogFormat != "" {
		base.LogFormat = top.LogFormat
	}

	return base
}

// ValidateConfig rejects configurations the application cannot run with.
func ValidateConfig(cfg model.Config) error {
	u, err := url.Parse(cfg.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api url must be an absolute http(s) URL, got %q", cfg.APIURL)
	}

	if cfg.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", cfg.TimeoutSeconds)
	}

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", cfg.LogFormat)
	}

	return nil
}

// Timeout returns the per-request timeout as a duration.
func Timeout(cfg model.Config) time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}

// ParseLogLevel converts debug, info, warn or error to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("log level must be debug, info, warn or error, got %q", s)
	}

	return level, nil
}

// NewLogger builds the application logger writing to w.
func NewLogger(w io.Writer, cfg model.Config) *slog.Logger {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)).With(slog.String("app", application.AppName))
	}

	return slog.New(slog.NewTextHandler(w, opts)).With(slog.String("app", application.AppName))
}
