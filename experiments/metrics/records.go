// Package metrics holds the record types experiments produce, a CSV writer
// for them, and summary statistics over a finished run.
package metrics

import (
	"time"

	"gopkg.in/yaml.v3"

	"mogo/searcher"
)

// Duration is a time.Duration that unmarshals from YAML strings such as
// "250ms" or "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// AgentConfig describes one search configuration under test.
type AgentConfig struct {
	ID       int      `yaml:"id"`
	Workers  int      `yaml:"workers"`
	Episodes int      `yaml:"episodes"`
	Duration Duration `yaml:"duration"`
}

// GameRecord summarizes one finished game between two agents.
type GameRecord struct {
	ID        int
	Agent1    int // AgentConfig.ID of player 0
	Agent2    int // AgentConfig.ID of player 1
	Winner    int
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}

// MoveRecord carries the search metric behind one played move.
type MoveRecord struct {
	Game   int // GameRecord.ID
	Step   int
	Player int
	searcher.SearchMetric
}
