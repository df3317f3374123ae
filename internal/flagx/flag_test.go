package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag followed by another flag keeps no value",
			args:         []string{"-c", "-w", ":8080"},
			allowedFlags: []string{"-c", "-w"},
			want:         []string{"-c", "-w", ":8080"},
		},
		{
			name:         "value that looks like a flag in equals form",
			args:         []string{"-config=--weird.json"},
			allowedFlags: []string{"-config"},
			want:         []string{"-config=--weird.json"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-n", "0 9 * * *", "-n", "@daily"},
			allowedFlags: []string{"-n"},
			want:         []string{"-n", "0 9 * * *", "-n", "@daily"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("LIFEWEEKS_TEST_CONFIG", "")

	assert.Equal(t, "/etc/short.json", ConfigPath([]string{"-c", "/etc/short.json"}, "LIFEWEEKS_TEST_CONFIG"))
	assert.Equal(t, "/etc/long.json", ConfigPath([]string{"-a", ":1", "-config", "/etc/long.json"}, "LIFEWEEKS_TEST_CONFIG"))
	assert.Equal(t, "/2.json", ConfigPath([]string{"-c", "/1.json", "-config", "/2.json"}, ""))
	assert.Empty(t, ConfigPath([]string{"-x", "1"}, "LIFEWEEKS_TEST_CONFIG"))

	t.Setenv("LIFEWEEKS_TEST_CONFIG", "/from/env.json")
	assert.Equal(t, "/from/env.json", ConfigPath(nil, "LIFEWEEKS_TEST_CONFIG"))
	assert.Equal(t, "/flag.json", ConfigPath([]string{"-c", "/flag.json"}, "LIFEWEEKS_TEST_CONFIG"))
}
