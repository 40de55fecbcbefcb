package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		allowed   []string
		boolFlags []string
		want      []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-d", "vault.db"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-d", "x"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "unknown flags ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end is kept",
			args:    []string{"-d"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "flag followed by another flag",
			args:    []string{"-d", "-l", "debug"},
			allowed: []string{"-d", "-l"},
			want:    []string{"-d", "-l", "debug"},
		},
		{
			name:      "bool flag does not swallow positional",
			args:      []string{"-seed", "herbs", "-l", "warn"},
			allowed:   []string{"-l"},
			boolFlags: []string{"-seed"},
			want:      []string{"-seed", "-l", "warn"},
		},
		{
			name:      "bool flag with explicit value",
			args:      []string{"-seed=false"},
			boolFlags: []string{"-seed"},
			want:      []string{"-seed=false"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed, tt.boolFlags...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "a.json", ConfigPath([]string{"-d", "x.db", "-c", "a.json"}))
	assert.Equal(t, "b.json", ConfigPath([]string{"-config=b.json"}))
	assert.Equal(t, "", ConfigPath([]string{"-d", "x.db"}))
	assert.Equal(t, "", ConfigPath(nil))
}
