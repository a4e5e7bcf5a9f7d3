/*
Package config reads the TOML settings of wdl.
*/
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/powellquiring/wordlesolver/predictor"
)

// DefaultPath is read when --config is not given.
const DefaultPath = "wdl.toml"

type Config struct {
	Predictor PredictorConfig `toml:"predictor"`
	Lexicon   LexiconConfig   `toml:"lexicon"`
	Sim       SimConfig       `toml:"sim"`
	Log       LogConfig       `toml:"log"`
}

type PredictorConfig struct {
	Suggestions int    `toml:"suggestions"`
	Seed        uint64 `toml:"seed"` // 0 picks a random seed
}

type LexiconConfig struct {
	Path  string `toml:"path"`  // empty is the system dictionary or the embedded list
	Count int    `toml:"count"` // 0 keeps every word
}

type SimConfig struct {
	Trials       int    `toml:"trials"`
	Workers      int    `toml:"workers"`
	DedupOpeners bool   `toml:"dedup_openers"`
	Target       string `toml:"target"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func Default() *Config {
	return &Config{
		Predictor: PredictorConfig{Suggestions: predictor.DefaultOutputSize},
		Sim:       SimConfig{Trials: 1},
	}
}

// Load decodes path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	ret := Default()
	md, err := toml.DecodeFile(path, ret)
	if errors.Is(err, fs.ErrNotExist) {
		return ret, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return ret, ret.Validate()
}

func (c *Config) Validate() error {
	switch {
	case c.Predictor.Suggestions < 1:
		return fmt.Errorf("predictor.suggestions must be positive: %d", c.Predictor.Suggestions)
	case c.Lexicon.Count < 0:
		return fmt.Errorf("lexicon.count must not be negative: %d", c.Lexicon.Count)
	case c.Sim.Trials < 1:
		return fmt.Errorf("sim.trials must be positive: %d", c.Sim.Trials)
	case c.Sim.Workers < 0:
		return fmt.Errorf("sim.workers must not be negative: %d", c.Sim.Workers)
	}
	return nil
}

// Write encodes c as TOML, the output can be loaded back with Load.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
