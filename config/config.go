// Package config loads the sweep configuration: defaults mirror the original
// pprimes harness, overridable by a yaml file, PRIMEBENCH_* environment
// variables, and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Sweep is everything the harness needs for one run.
type Sweep struct {
	Workload string
	Sizes    []int
	Threads  []int
	Trials   int
	Timeout  time.Duration
	OutRoot  string
}

// Load reads configuration. cfgFile may be empty, in which case
// ./primebench.yaml is used when present. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (Sweep, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("primebench")
	}

	v.SetEnvPrefix("PRIMEBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("workload", "./pprimes")
	v.SetDefault("sizes", []int{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000})
	v.SetDefault("threads", []int{1, 2, 4, 8, 16, 32, 64})
	v.SetDefault("trials", 3)
	v.SetDefault("timeout_sec", 3600)
	v.SetDefault("out_root", "trial_data")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Sweep{}, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return Sweep{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	cfg := Sweep{
		Workload: v.GetString("workload"),
		Sizes:    v.GetIntSlice("sizes"),
		Threads:  v.GetIntSlice("threads"),
		Trials:   v.GetInt("trials"),
		Timeout:  time.Duration(v.GetInt("timeout_sec")) * time.Second,
		OutRoot:  v.GetString("out_root"),
	}
	return cfg, cfg.validate()
}

func (c Sweep) validate() error {
	if c.Workload == "" {
		return fmt.Errorf("workload path is required")
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("at least one size is required")
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("sizes must be non-negative, got %d", n)
		}
	}
	if len(c.Threads) == 0 {
		return fmt.Errorf("at least one thread level is required")
	}
	for _, t := range c.Threads {
		if t < 1 {
			return fmt.Errorf("thread levels must be positive, got %d", t)
		}
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
