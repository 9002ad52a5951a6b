package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
year: 2021
day: 12
parallel: 4
accounts:
  - name: github
    input: inputs/github/day{day}.txt
    want:
      D12p1: "3761"
  - name: google
    input: inputs/google/day{day}.txt
`

func TestParseConfig(t *testing.T) {
	got, err := ParseConfig([]byte(testConfig))
	require.NoError(t, err)
	want := Config{
		Year:     2021,
		Day:      12,
		Parallel: 4,
		Accounts: []Account{
			{
				Name:  "github",
				Input: "inputs/github/day{day}.txt",
				Want:  map[string]string{"D12p1": "3761"},
			},
			{Name: "google", Input: "inputs/google/day{day}.txt"},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Config{}, "Out", "Logger")); diff != "" {
		t.Errorf("ParseConfig mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "inputs/github/day09.txt", got.Accounts[0].InputPath(9))
	assert.Equal(t, "inputs/google/day21.txt", got.Accounts[1].InputPath(21))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Accounts, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "accounts: [", "parse config yaml"},
		{"sample and skip", "sample: true\nskip_sample: true", "mutually exclusive"},
		{"negative parallel", "parallel: -1", "parallel cannot be negative"},
		{"unnamed account", "accounts: [{input: x}]", "has no name"},
		{"no input", "accounts: [{name: a}]", `"a" has no input`},
		{"duplicate", "accounts: [{name: a, input: x}, {name: a, input: y}]", `duplicate account "a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
