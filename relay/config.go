package relay

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hasbyte1/go-laravel-relay/collections"
)

// EnvPrefix is the prefix of environment variables that override file
// settings. A double underscore separates levels: RELAY_SERVER__PORT sets
// server.port.
const EnvPrefix = "RELAY_"

const defaultMaxBodyBytes int64 = 1 << 20

// Config is the relay's full configuration.
type Config struct {
	Server ServerConfig `koanf:"server"`
	Retry  RetryConfig  `koanf:"retry"`
	Locale string       `koanf:"locale"`
	// Trace writes OpenTelemetry spans to stderr when true.
	Trace  bool          `koanf:"trace"`
	Routes []RouteConfig `koanf:"routes"`
}

// ServerConfig holds the inbound HTTP listener settings.
type ServerConfig struct {
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	MaxBodyBytes int64         `koanf:"max_body_bytes"`
}

// RetryConfig controls outbound delivery. Attempt n waits n×Backoff before
// it is sent; Timeout bounds a single attempt.
type RetryConfig struct {
	Attempts int           `koanf:"attempts"`
	Backoff  time.Duration `koanf:"backoff"`
	Timeout  time.Duration `koanf:"timeout"`
}

// RouteConfig describes one inbound hook and where its payload goes.
type RouteConfig struct {
	Name   string `koanf:"name"`
	Target string `koanf:"target"`
	// TokenHash is a bcrypt or argon2id hash of the token callers must send.
	// Empty means the route is open.
	TokenHash string `koanf:"token_hash"`
	// SealKey, when set, is a "base64:" AES-256 key; the encoded body is
	// sealed with AES-256-GCM before delivery.
	SealKey string `koanf:"seal_key"`
	// Format is "json" (default) or "yaml".
	Format string        `koanf:"format"`
	Where  []WhereClause `koanf:"where"`
	Only   []string      `koanf:"only"`
	// Fields maps output keys to dotted source paths.
	Fields  map[string]string `koanf:"fields"`
	Headers map[string]string `koanf:"headers"`
	// Macros are collection macros applied to the shaped body, in order.
	Macros []string `koanf:"macros"`
}

// WhereClause is one payload filter. Operator is a symbol such as "=",
// "!=" or ">="; empty means "=".
type WhereClause struct {
	Path     string `koanf:"path"`
	Operator string `koanf:"operator"`
	Value    any    `koanf:"value"`
}

// LoadConfig reads the YAML file at path (a missing file is not an error),
// applies RELAY_ environment overrides and defaults, and validates the
// result.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: loading %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	defaults := map[string]any{
		"server.port":           8080,
		"server.read_timeout":   10 * time.Second,
		"server.max_body_bytes": defaultMaxBodyBytes,
		"retry.attempts":        3,
		"retry.backoff":         500 * time.Millisecond,
		"retry.timeout":         10 * time.Second,
		"locale":                "en",
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings and every route. Macros named by a route
// must already be registered.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Retry.Attempts < 1 {
		return fmt.Errorf("%w: retry.attempts must be at least 1, got %d", ErrInvalidConfig, c.Retry.Attempts)
	}
	seen := make(map[string]bool, len(c.Routes))
	for i, r := range c.Routes {
		if r.Name == "" {
			return fmt.Errorf("%w: routes[%d] has no name", ErrInvalidConfig, i)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: duplicate route %q", ErrInvalidConfig, r.Name)
		}
		seen[r.Name] = true
		if err := r.validate(); err != nil {
			return fmt.Errorf("%w: route %q: %v", ErrInvalidConfig, r.Name, err)
		}
	}
	return nil
}

func (r RouteConfig) validate() error {
	u, err := url.Parse(r.Target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("target %q is not an http(s) URL", r.Target)
	}
	switch r.Format {
	case "", FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format %q is not json or yaml", r.Format)
	}
	if r.TokenHash != "" {
		if _, ok := DetectTokenDriver(r.TokenHash); !ok {
			return errors.New("token_hash is not a bcrypt or argon2id hash")
		}
	}
	if r.SealKey != "" {
		if _, err := decodeSealKey(r.SealKey); err != nil {
			return err
		}
	}
	for _, w := range r.Where {
		if w.Path == "" {
			return errors.New("where clause without path")
		}
		if _, ok := collections.ParseOperator(w.Operator); w.Operator != "" && !ok {
			return fmt.Errorf("where %q: unknown operator %q", w.Path, w.Operator)
		}
	}
	for _, name := range r.Macros {
		if !collections.HasMacro(name) {
			return fmt.Errorf("macro %q is not registered", name)
		}
	}
	return nil
}

// Route returns the route called name.
func (c *Config) Route(name string) (RouteConfig, bool) {
	for _, r := range c.Routes {
		if r.Name == name {
			return r, true
		}
	}
	return RouteConfig{}, false
}
