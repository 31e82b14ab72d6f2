package experiments

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"mogo/experiments/metrics"
)

// Config drives one parallelization experiment: every agent plays Games
// games against the baseline on the named game.
type Config struct {
	Game      string                `yaml:"game"`
	Games     int                   `yaml:"games"`
	MoveLimit int                   `yaml:"move_limit"`
	Baseline  metrics.AgentConfig   `yaml:"baseline"`
	Agents    []metrics.AgentConfig `yaml:"agents"`
}

const defaultTimeBudget = 10 * time.Millisecond

// DefaultConfig sweeps worker counts against a sequential baseline with the
// same time budget, on Nim.
func DefaultConfig() Config {
	baseline := metrics.AgentConfig{ID: 0, Workers: 1, Duration: metrics.Duration(defaultTimeBudget)}
	agents := []metrics.AgentConfig{}
	for i, workers := range []int{1, 4, 8, 16, 32, 64} {
		agents = append(agents, metrics.AgentConfig{
			ID:       i + 1,
			Workers:  workers,
			Duration: metrics.Duration(defaultTimeBudget),
		})
	}

	return Config{
		Game:     "nim",
		Games:    30,
		Baseline: baseline,
		Agents:   agents,
	}
}

// LoadConfig reads a YAML experiment config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read experiment config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse experiment config")
	}
	if _, err := gameByName(cfg.Game); err != nil {
		return Config{}, err
	}
	if cfg.Games <= 0 {
		return Config{}, errors.Errorf("games must be positive, got %d", cfg.Games)
	}
	return cfg, nil
}
