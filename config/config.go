// Package config loads search and experiment settings from YAML.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Vmoney23/ScotlandYardAI/search"
)

const (
	Minimax = "minimax"
	Random  = "random"
)

type Config struct {
	Search     Search         `yaml:"search"`
	Weights    search.Weights `yaml:"weights"`
	Experiment Experiment     `yaml:"experiment"`
}

type Search struct {
	Depth      int           `yaml:"depth"`
	Duration   time.Duration `yaml:"duration"`
	NodeBudget int           `yaml:"node_budget"`
	Pruning    bool          `yaml:"pruning"`
}

type Experiment struct {
	Games    int    `yaml:"games"`
	Parallel int    `yaml:"parallel"`
	Pursuers int    `yaml:"pursuers"`
	MaxTurns int    `yaml:"max_turns"`
	Seed     uint64 `yaml:"seed"`
	Fugitive string `yaml:"fugitive"` // minimax or random
	Pursuer  string `yaml:"pursuer"`
	Output   string `yaml:"output"` // directory for CSV records, none if empty
}

func Default() Config {
	return Config{
		Search: Search{
			Depth:      search.DefaultDepth,
			NodeBudget: search.DefaultNodeBudget,
			Pruning:    true,
		},
		Weights: search.DefaultWeights(),
		Experiment: Experiment{
			Games:    10,
			Parallel: 4,
			Pursuers: 3,
			MaxTurns: 500,
			Seed:     1,
			Fugitive: Minimax,
			Pursuer:  Random,
		},
	}
}

// Load reads a YAML file. Settings missing from the file keep their
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read configuration %q", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.WithMessagef(err, "in %q", path)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Search.Depth < 1:
		return errors.Errorf("search depth must be positive, got %d", c.Search.Depth)
	case c.Search.NodeBudget < 1:
		return errors.Errorf("node budget must be positive, got %d", c.Search.NodeBudget)
	case c.Search.Duration < 0:
		return errors.Errorf("search duration must not be negative, got %s", c.Search.Duration)
	case c.Experiment.Games < 1:
		return errors.Errorf("games must be positive, got %d", c.Experiment.Games)
	case c.Experiment.Parallel < 1:
		return errors.Errorf("parallel must be positive, got %d", c.Experiment.Parallel)
	case c.Experiment.Pursuers < 1:
		return errors.Errorf("pursuers must be positive, got %d", c.Experiment.Pursuers)
	}
	for _, kind := range []string{c.Experiment.Fugitive, c.Experiment.Pursuer} {
		if kind != Minimax && kind != Random {
			return errors.Errorf("unknown player kind %q", kind)
		}
	}
	return nil
}

// SearchOptions turns the settings into options for search.New.
func (c Config) SearchOptions() []search.Option {
	options := []search.Option{
		search.WithDepth(c.Search.Depth),
		search.WithNodeBudget(c.Search.NodeBudget),
		search.WithWeights(c.Weights),
	}
	if c.Search.Duration > 0 {
		options = append(options, search.WithDuration(c.Search.Duration))
	}
	if !c.Search.Pruning {
		options = append(options, search.WithoutPruning())
	}
	return options
}
