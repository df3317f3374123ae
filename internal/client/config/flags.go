package config

import (
	"os"

	"github.com/spf13/pflag"
)

// RegisterFlags declares the CLI's persistent flags on fs.
//
//	-c, --config   JSON config file
//	-a, --server   address and port of the gRPC API
//	    --session  session file path
//	    --cache    offline cache file, "" to disable
//	    --timeout  per-request timeout, e.g. 10s
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "path to JSON config file")
	fs.StringP("server", "a", "", "address and port to access server")
	fs.String("session", "", "path to the session file")
	fs.String("cache", "", "path to the offline cache, empty to disable")
	fs.Duration("timeout", 0, "per-request timeout")
}

// Load builds a Config from defaults, then the JSON file named by --config
// (or EnvConfigFile), then flags the user actually set.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, _ := fs.GetString("config")
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.LoadJSON(path); err != nil {
			return nil, err
		}
	}

	if fs.Changed("server") {
		cfg.ServerEndpointAddr, _ = fs.GetString("server")
	}
	if fs.Changed("session") {
		cfg.SessionFile, _ = fs.GetString("session")
	}
	if fs.Changed("cache") {
		cfg.CacheFile, _ = fs.GetString("cache")
	}
	if fs.Changed("timeout") {
		cfg.RequestTimeout, _ = fs.GetDuration("timeout")
	}
	return cfg, nil
}
