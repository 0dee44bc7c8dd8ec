// Package config loads the host's TOML run configuration via
// BurntSushi/toml, the teacher's configuration library of choice.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk run configuration, overridable by CLI flags of
// the same name.
type Config struct {
	Target             string `toml:"target"`
	Seed               int64  `toml:"seed"`
	MaxQueries         int    `toml:"max_queries"`
	DryRun             bool   `toml:"dry_run"`
	DumpAllQueries     bool   `toml:"dump_all_queries"`
	DumpAllGraphs      bool   `toml:"dump_all_graphs"`
	Verbose            bool   `toml:"verbose"`
	ExcludeCatalog     bool   `toml:"exclude_catalog"`
	EnableExprJoinCond bool   `toml:"enable_expr_join_cond"`
}

// Default returns the zero-value configuration with its non-zero
// defaults filled in.
func Default() Config {
	return Config{MaxQueries: 0} // 0 means "run until stopped"
}

// Load reads and decodes a TOML config file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to load %s: %w", path, err)
	}
	return cfg, nil
}
