// SPDX-License-Identifier: MIT
// Package: esta/config
//
// config.go — the run configuration contract (spec §6's seven enumerated
// knobs), loaded with viper so a run can be driven by a config file or
// environment variables without the core ever importing viper itself.
package config

import (
	"reflect"
	"strings"

	"github.com/spf13/viper"

	"github.com/opentimely/esta/delay"
	"github.com/opentimely/esta/propagate"
	"github.com/opentimely/esta/satbdd"
	"github.com/opentimely/esta/tag"
)

func tagDelay(f float64) delay.Delay { return delay.Delay(f) }

// BinPolicyKind selects a tag.BinPolicy by name from a config file.
type BinPolicyKind string

const (
	BinPolicyNone       BinPolicyKind = "none"
	BinPolicyFixedWidth BinPolicyKind = "fixed_width"
	BinPolicySlackGuided BinPolicyKind = "sta_slack_guided"
)

// Config holds every run-time knob spec §6 enumerates.
type Config struct {
	BinPolicy               BinPolicyKind `mapstructure:"bin_policy"`
	BinWidth                float64       `mapstructure:"bin_width"`
	SlackGuidedFraction     float64       `mapstructure:"slack_guided_fraction"`
	SlackGuidedWidthCoarse  float64       `mapstructure:"slack_guided_width_coarse"`
	SlackGuidedWidthFine    float64       `mapstructure:"slack_guided_width_fine"`
	MaxPermutations         int           `mapstructure:"max_permutations"`
	CondFuncScheme          string        `mapstructure:"cond_func_scheme"`
	CondFuncGroupScheme     string        `mapstructure:"cond_func_group_scheme"`
	CondFuncK               int           `mapstructure:"cond_func_k"`
	CondFuncCountRise       int           `mapstructure:"cond_func_count_rise"`
	CondFuncCountFall       int           `mapstructure:"cond_func_count_fall"`
	CondFuncCountHigh       int           `mapstructure:"cond_func_count_high"`
	CondFuncCountLow        int           `mapstructure:"cond_func_count_low"`
	XfuncCacheCapacity      int           `mapstructure:"xfunc_cache_capacity"`
	InferLastMaxProbability bool          `mapstructure:"infer_last_max_probability"`
	EnableTransitionFilter  bool          `mapstructure:"enable_transition_filter"`
	ReorderMethod           string        `mapstructure:"reorder_method"`
}

// Defaults returns the configuration a run uses when nothing overrides
// it: exact (unbinned) merging, no permutation cap, the two-variable
// uniform cond_func encoding, an unbounded xfunc cache, the transition
// filter on, and exact (non-inferred) last-tag probability.
func Defaults() Config {
	return Config{
		BinPolicy:              BinPolicyNone,
		MaxPermutations:        0,
		CondFuncScheme:         "uniform",
		XfuncCacheCapacity:     0,
		EnableTransitionFilter: true,
	}
}

// Load reads configuration from path (if non-empty), then ESTA_-prefixed
// environment variables, layered over Defaults().
func Load(path string) (Config, error) {
	v := viper.New()
	cfg := Defaults()

	v.SetEnvPrefix("ESTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about, so bind every field's
	// key to its ESTA_ variable explicitly.
	fields := reflect.TypeOf(cfg)
	for i := 0; i < fields.NumField(); i++ {
		if err := v.BindEnv(fields.Field(i).Tag.Get("mapstructure")); err != nil {
			return Config{}, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// TagBinPolicy builds the tag.BinPolicy this configuration selects.
func (c Config) TagBinPolicy(criticalPath float64) tag.BinPolicy {
	switch c.BinPolicy {
	case BinPolicyFixedWidth:
		return tag.FixedWidth{Width: tagDelay(c.BinWidth)}
	case BinPolicySlackGuided:
		return tag.StaSlackGuided{
			CriticalPath: tagDelay(criticalPath),
			Fraction:     c.SlackGuidedFraction,
			WidthCoarse:  tagDelay(c.SlackGuidedWidthCoarse),
			WidthFine:    tagDelay(c.SlackGuidedWidthFine),
		}
	default:
		return tag.NoBinning{}
	}
}

// CondFuncConfig builds the satbdd.CondFuncConfig this configuration
// selects.
func (c Config) CondFuncConfig() satbdd.CondFuncConfig {
	cfg := satbdd.CondFuncConfig{K: c.CondFuncK, Counts: satbdd.Counts{
		Rise: c.CondFuncCountRise,
		Fall: c.CondFuncCountFall,
		High: c.CondFuncCountHigh,
		Low:  c.CondFuncCountLow,
	}}
	if c.CondFuncScheme == "grouped" {
		cfg.Scheme = satbdd.Grouped
	}
	switch c.CondFuncGroupScheme {
	case "binary":
		cfg.GroupScheme = satbdd.Binary
	case "gray":
		cfg.GroupScheme = satbdd.Gray
	default:
		cfg.GroupScheme = satbdd.RoundRobin
	}
	return cfg
}

// EngineConfig builds the propagate.Config this configuration selects.
func (c Config) EngineConfig() propagate.Config {
	return propagate.Config{
		MaxPermutations:         c.MaxPermutations,
		EnableTransitionFilter:  c.EnableTransitionFilter,
		InferLastMaxProbability: c.InferLastMaxProbability,
	}
}
