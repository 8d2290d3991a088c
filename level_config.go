package records

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LevelConfig is the file form of a level table:
//
//	default: important
//	levels:
//	  critical: 1
//	  important: 10
type LevelConfig struct {
	Default Verbosity  `yaml:"default"`
	Levels  LevelTable `yaml:"levels"`
}

// LoadLevelConfig decodes a YAML level configuration. A nil reader yields
// StandardLevels with no default.
func LoadLevelConfig(r io.Reader) (LevelConfig, error) {
	cfg := LevelConfig{}
	if r == nil {
		cfg.Levels = StandardLevels()
		return cfg, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return LevelConfig{}, fmt.Errorf("records: read level config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LevelConfig{}, fmt.Errorf("records: unmarshal level config yaml: %w", err)
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = StandardLevels()
	}
	if !cfg.Default.IsDefault() {
		if _, err := (levelPolicy{table: cfg.Levels}).resolve(cfg.Default); err != nil {
			return LevelConfig{}, fmt.Errorf("records: level config default: %w", err)
		}
	}
	return cfg, nil
}

// LoadLevelConfigFile reads a YAML level configuration by path. A missing file
// yields the same result as LoadLevelConfig(nil).
func LoadLevelConfigFile(path string) (LevelConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadLevelConfig(nil)
		}
		return LevelConfig{}, fmt.Errorf("records: open level config %s: %w", path, err)
	}
	defer file.Close()
	return LoadLevelConfig(file)
}

// Define builds a Definition from the configured table.
func (c LevelConfig) Define() *Definition {
	return Define(c.Levels)
}

// NewKeeper builds a NamedKeeper using the configured table and default.
func (c LevelConfig) NewKeeper(opts ...Option) (*NamedKeeper, error) {
	return c.Define().New(c.Default, opts...)
}
