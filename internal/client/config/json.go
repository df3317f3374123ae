package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields keep their current value.
type JsonConfig struct {
	ServerEndpointAddr string          `json:"server_endpoint_addr"`
	SessionFile        string          `json:"session_file"`
	CacheFile          *string         `json:"cache_file"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
}

// LoadJSON overlays c with the values in the JSON file at path.
func (c *Config) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != "" {
		c.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.SessionFile != "" {
		c.SessionFile = jc.SessionFile
	}
	if jc.CacheFile != nil {
		c.CacheFile = *jc.CacheFile
	}
	if jc.RequestTimeout != nil {
		c.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	return nil
}
