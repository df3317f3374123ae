// Package config handles configuration for the lifeweeks CLI: defaults,
// an optional JSON file and finally command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// EnvConfigFile names an optional JSON config file when -c is not given.
const EnvConfigFile = "LIFEWEEKS_CLIENT_CONFIG"

// Config holds runtime settings for the lifeweeks CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the gRPC API.
//   - SessionFile: where tokens are kept between invocations (0600).
//   - CacheFile: SQLite snapshot used when the server is unreachable;
//     empty disables the cache.
//   - RequestTimeout: deadline applied to every remote call.
type Config struct {
	ServerEndpointAddr string
	SessionFile        string
	CacheFile          string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.SessionFile = defaultPath("session.json")
	c.CacheFile = defaultPath("cache.db")
	c.RequestTimeout = 30 * time.Second
}

func defaultPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "lifeweeks", name)
}
