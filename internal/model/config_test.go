package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.APIURL != "https://jsonplaceholder.typicode.com/users" {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, DefaultAPIURL)
	}

	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want %d", cfg.TimeoutSeconds, 30)
	}

	if cfg.RemotePersistsCreates {
		t.Error("RemotePersistsCreates = true, want false")
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}

	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestConfig_JSONTags(t *testing.T) {
	cfg := Config{
		APIURL:                "http://localhost:3000/clients",
		TimeoutSeconds:        5,
		RemotePersistsCreates: true,
		LogLevel:              "debug",
		LogFormat:             "json",
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	for _, key := range []string{`"api_url"`, `"timeout_seconds"`, `"remote_persists_creates"`, `"log_level"`, `"log_format"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON should contain %s, got %s", key, data)
		}
	}

	var decoded Config
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if decoded != cfg {
		t.Errorf("decoded = %+v, want %+v", decoded, cfg)
	}
}
