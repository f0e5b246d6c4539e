package model

const (
	// DefaultAPIURL is the collection endpoint used when nothing else is configured.
	DefaultAPIURL = "https://jsonplaceholder.typicode.com/users"

	// DefaultTimeoutSeconds bounds every remote request.
	DefaultTimeoutSeconds = 30
)

// Config holds the application configuration
type Config struct {
	// APIURL is the base URL of the client collection resource
	APIURL string `json:"api_url" yaml:"api_url"`

	// TimeoutSeconds is the per-request timeout for the remote collection
	TimeoutSeconds int `json:"timeout_seconds" yaml:"timeout_seconds"`

	// RemotePersistsCreates marks created records as remote, so later edits
	// and deletes are sent to the collection. Demo endpoints echo creates
	// without storing them, so this is off by default.
	RemotePersistsCreates bool `json:"remote_persists_creates" yaml:"remote_persists_creates"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `json:"log_level" yaml:"log_level"`

	// LogFormat is text or json
	LogFormat string `json:"log_format" yaml:"log_format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		APIURL:         DefaultAPIURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		LogLevel:       "warn",
		LogFormat:      "text",
	}
}
