package relay_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hasbyte1/go-laravel-relay/collections"
	"github.com/hasbyte1/go-laravel-relay/relay"
)

const relayYAML = `
server:
  port: 9000
retry:
  attempts: 5
  backoff: 250ms
routes:
  - name: orders
    target: https://example.com/ingest
    token_hash: "$2a$10$abcdefghijklmnopqrstuuCLu0Ar5Q4vF1.Ec5zN1hJ2rGzGRvT1S"
    format: yaml
    where:
      - path: status
        operator: ">="
        value: 100
    fields:
      id: order.id
      skus: order.lines.*.sku
    headers:
      X-Source: relay
    macros: [compact]
`

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relay.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func withDefaultMacros(t *testing.T) {
	t.Helper()
	relay.RegisterDefaultMacros()
	t.Cleanup(collections.FlushMacros)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := relay.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Server.Port != 8080 {
			t.Errorf("port = %d, want 8080", cfg.Server.Port)
		}
		if cfg.Server.ReadTimeout != 10*time.Second {
			t.Errorf("read_timeout = %v, want 10s", cfg.Server.ReadTimeout)
		}
		if cfg.Server.MaxBodyBytes != 1<<20 {
			t.Errorf("max_body_bytes = %d, want %d", cfg.Server.MaxBodyBytes, 1<<20)
		}
		if cfg.Retry.Attempts != 3 || cfg.Retry.Backoff != 500*time.Millisecond {
			t.Errorf("retry = %+v, want 3 attempts / 500ms", cfg.Retry)
		}
		if cfg.Locale != "en" {
			t.Errorf("locale = %q, want en", cfg.Locale)
		}
	})

	t.Run("yaml file", func(t *testing.T) {
		withDefaultMacros(t)
		cfg, err := relay.LoadConfig(writeConfig(t, relayYAML))
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Server.Port != 9000 {
			t.Errorf("port = %d, want 9000", cfg.Server.Port)
		}
		if cfg.Retry.Attempts != 5 || cfg.Retry.Backoff != 250*time.Millisecond {
			t.Errorf("retry = %+v, want 5 attempts / 250ms", cfg.Retry)
		}
		route, ok := cfg.Route("orders")
		if !ok {
			t.Fatal(`Route("orders") not found`)
		}
		if route.Format != relay.FormatYAML || route.Fields["skus"] != "order.lines.*.sku" {
			t.Errorf("route = %+v", route)
		}
		if len(route.Where) != 1 || route.Where[0].Operator != ">=" {
			t.Errorf("where = %+v", route.Where)
		}
		if route.Headers["X-Source"] != "relay" {
			t.Errorf("headers = %v", route.Headers)
		}
		if _, ok := cfg.Route("nope"); ok {
			t.Error(`Route("nope") should not be found`)
		}
	})

	t.Run("env var override", func(t *testing.T) {
		t.Setenv("RELAY_SERVER__PORT", "9100")
		t.Setenv("RELAY_RETRY__ATTEMPTS", "7")

		cfg, err := relay.LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Server.Port != 9100 {
			t.Errorf("port = %d, want 9100", cfg.Server.Port)
		}
		if cfg.Retry.Attempts != 7 {
			t.Errorf("attempts = %d, want 7", cfg.Retry.Attempts)
		}
	})

	t.Run("unregistered macro", func(t *testing.T) {
		collections.FlushMacros()
		_, err := relay.LoadConfig(writeConfig(t, relayYAML))
		if !errors.Is(err, relay.ErrInvalidConfig) || !strings.Contains(err.Error(), "compact") {
			t.Fatalf("err = %v; want ErrInvalidConfig naming compact", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() relay.Config {
		return relay.Config{
			Server: relay.ServerConfig{Port: 8080},
			Retry:  relay.RetryConfig{Attempts: 1},
			Routes: []relay.RouteConfig{{Name: "a", Target: "http://localhost:9000/in"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*relay.Config)
		want   string
	}{
		{"valid", func(*relay.Config) {}, ""},
		{"port", func(c *relay.Config) { c.Server.Port = 70000 }, "server.port"},
		{"attempts", func(c *relay.Config) { c.Retry.Attempts = 0 }, "retry.attempts"},
		{"unnamed route", func(c *relay.Config) { c.Routes[0].Name = "" }, "no name"},
		{"duplicate route", func(c *relay.Config) { c.Routes = append(c.Routes, c.Routes[0]) }, "duplicate"},
		{"target scheme", func(c *relay.Config) { c.Routes[0].Target = "ftp://host/x" }, "target"},
		{"format", func(c *relay.Config) { c.Routes[0].Format = "xml" }, "format"},
		{"token hash", func(c *relay.Config) { c.Routes[0].TokenHash = "plain" }, "token_hash"},
		{"seal key", func(c *relay.Config) { c.Routes[0].SealKey = "base64:c2hvcnQ=" }, "seal_key must be 32 bytes"},
		{"where path", func(c *relay.Config) { c.Routes[0].Where = []relay.WhereClause{{Value: 1}} }, "without path"},
		{"where operator", func(c *relay.Config) {
			c.Routes[0].Where = []relay.WhereClause{{Path: "a", Operator: "~~"}}
		}, "unknown operator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, relay.ErrInvalidConfig) || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() error = %v; want ErrInvalidConfig mentioning %q", err, tt.want)
			}
		})
	}
}
