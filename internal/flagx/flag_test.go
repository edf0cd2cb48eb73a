package flagx

import (
	"os"
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
			args:         []string{"-s", "topsecret", "-a", "localhost"},
			allowedFlags: []string{"-s", "--secret"},
			want:         []string{"-s", "topsecret"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--secret=topsecret", "-a", "localhost"},
			allowedFlags: []string{"-s", "--secret"},
			want:         []string{"--secret=topsecret"},
		},
		{
			name:         "both forms present, order preserved",
			args:         []string{"--secret=first", "-s", "second", "-x", "1"},
			allowedFlags: []string{"-s", "--secret"},
			want:         []string{"--secret=first", "-s", "second"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-s", "--secret"},
			want:         []string{},
		},
		{
			name:         "flag without value at end kept as-is",
			args:         []string{"-s"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s"},
		},
		{
			name:         "flag followed by another flag takes no value",
			args:         []string{"-s", "-notvalue"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowedFlags)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server", "-c", "conf.json", "-a", ":8080"}
	assert.Equal(t, "conf.json", ConfigFileFlag())

	os.Args = []string{"server", "--config=alt.json"}
	assert.Equal(t, "alt.json", ConfigFileFlag())

	os.Args = []string{"server", "-a", ":8080"}
	assert.Equal(t, "", ConfigFileFlag())
}
