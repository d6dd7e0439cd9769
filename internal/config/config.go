// Package config resolves the client configuration from defaults, an
// optional .env file, an optional config file, LUMERA_* environment
// variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "LUMERA"

// Keys understood by the client.
const (
	KeyAPIURL          = "api_url"
	KeyDB              = "db"
	KeyHTTPTimeout     = "http_timeout"
	KeyDevListen       = "dev.listen"
	KeyDevBackend      = "dev.backend"
	KeyDevAllowedHosts = "dev.allowed_hosts"
	KeyTTSDir          = "tts.dir"
)

// AllowedHosts is the production host allow-list of the dev server.
var AllowedHosts = []string{
	"lumera.cl",
	"www.lumera.cl",
	"app.lumera.cl",
	"lumera.lat",
	"www.lumera.lat",
	"app.lumera.lat",
	"localhost",
}

// Config holds the resolved client configuration.
type Config struct {
	// APIURL is the backend base URL, without a trailing slash.
	APIURL string

	// DBPath is the SQLite file holding the session keys. Empty means
	// store.DefaultDBPath.
	DBPath string

	// HTTPTimeout bounds a single backend request. Zero disables it.
	HTTPTimeout time.Duration

	Dev DevConfig
	TTS TTSConfig
}

// DevConfig configures the development proxy server.
type DevConfig struct {
	Listen       string
	Backend      string
	AllowedHosts []string
}

// TTSConfig configures text-to-speech output.
type TTSConfig struct {
	Dir string // Default: $TMPDIR/lumera-tts
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		APIURL: "http://localhost:8080",
		Dev: DevConfig{
			Listen:       "0.0.0.0:5173",
			Backend:      "http://localhost:8080",
			AllowedHosts: append([]string(nil), AllowedHosts...),
		},
		TTS: TTSConfig{
			Dir: filepath.Join(os.TempDir(), "lumera-tts"),
		},
	}
}

// NewViper returns a viper instance seeded with the defaults, bound to
// LUMERA_* variables and, when one exists, the user's config file.
// A .env file in the working directory (or LUMERA_ENV_FILE) is loaded
// into the process environment first; it never overrides variables that
// are already set.
func NewViper() (*viper.Viper, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	d := DefaultConfig()
	v := viper.New()
	v.SetDefault(KeyAPIURL, d.APIURL)
	v.SetDefault(KeyDB, d.DBPath)
	v.SetDefault(KeyHTTPTimeout, d.HTTPTimeout)
	v.SetDefault(KeyDevListen, d.Dev.Listen)
	v.SetDefault(KeyDevBackend, d.Dev.Backend)
	v.SetDefault(KeyDevAllowedHosts, d.Dev.AllowedHosts)
	v.SetDefault(KeyTTSDir, d.TTS.Dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	return v, nil
}

// FromViper extracts a Config from v and validates it.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		APIURL:      strings.TrimRight(v.GetString(KeyAPIURL), "/"),
		DBPath:      v.GetString(KeyDB),
		HTTPTimeout: v.GetDuration(KeyHTTPTimeout),
		Dev: DevConfig{
			Listen:       v.GetString(KeyDevListen),
			Backend:      strings.TrimRight(v.GetString(KeyDevBackend), "/"),
			AllowedHosts: splitList(v.GetStringSlice(KeyDevAllowedHosts)),
		},
		TTS: TTSConfig{
			Dir: v.GetString(KeyTTSDir),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load is NewViper followed by FromViper.
func Load() (Config, error) {
	v, err := NewViper()
	if err != nil {
		return Config{}, err
	}
	return FromViper(v)
}

// Validate checks URLs, durations and the dev server settings.
func (c Config) Validate() error {
	if err := checkURL(KeyAPIURL, c.APIURL); err != nil {
		return err
	}
	if err := checkURL(KeyDevBackend, c.Dev.Backend); err != nil {
		return err
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%s must not be negative, got %s", KeyHTTPTimeout, c.HTTPTimeout)
	}
	if c.Dev.Listen == "" {
		return fmt.Errorf("%s is required", KeyDevListen)
	}
	if len(c.Dev.AllowedHosts) == 0 {
		return fmt.Errorf("%s must list at least one host", KeyDevAllowedHosts)
	}
	return nil
}

func checkURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", key, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host: %q", key, raw)
	}
	return nil
}

// splitList accepts both repeated values and a single comma-separated one,
// which is how list values arrive from the environment.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func loadDotEnv() error {
	path := os.Getenv(EnvPrefix + "_ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// configDir returns $XDG_CONFIG_HOME/lumera or ~/.config/lumera.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "lumera"), nil
}
