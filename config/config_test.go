package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no stray primebench.yaml interferes.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "./pprimes", cfg.Workload)
	assert.Equal(t, []int{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000}, cfg.Sizes)
	assert.Equal(t, []int{1, 2, 4, 8, 16, 32, 64}, cfg.Threads)
	assert.Equal(t, 3, cfg.Trials)
	assert.Equal(t, time.Hour, cfg.Timeout)
	assert.Equal(t, "trial_data", cfg.OutRoot)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
workload: ./fake_workload
sizes: [10, 100]
threads: [1, 2]
trials: 2
timeout_sec: 5
out_root: out
`), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "./fake_workload", cfg.Workload)
	assert.Equal(t, []int{10, 100}, cfg.Sizes)
	assert.Equal(t, []int{1, 2}, cfg.Threads)
	assert.Equal(t, 2, cfg.Trials)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "out", cfg.OutRoot)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Sweep{
		Workload: "./pprimes",
		Sizes:    []int{10},
		Threads:  []int{1},
		Trials:   1,
		Timeout:  time.Second,
	}
	require.NoError(t, valid.validate())

	tests := []struct {
		name   string
		mutate func(*Sweep)
	}{
		{"empty workload", func(c *Sweep) { c.Workload = "" }},
		{"no sizes", func(c *Sweep) { c.Sizes = nil }},
		{"negative size", func(c *Sweep) { c.Sizes = []int{-1} }},
		{"no threads", func(c *Sweep) { c.Threads = nil }},
		{"zero thread level", func(c *Sweep) { c.Threads = []int{0} }},
		{"zero trials", func(c *Sweep) { c.Trials = 0 }},
		{"zero timeout", func(c *Sweep) { c.Timeout = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			assert.Error(t, c.validate())
		})
	}
}
