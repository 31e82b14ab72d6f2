// Package experiments measures how root parallelization affects playing
// strength by pitting parallel search configurations against a sequential
// baseline over full games.
package experiments

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"mogo/arena"
	"mogo/experiments/metrics"
	"mogo/game"
	"mogo/game/dvonn"
	"mogo/game/nim"
	"mogo/searcher"
)

// RunParallelizationExperiment plays every configured agent against the
// baseline and stores the records as CSV under resultDir.
func RunParallelizationExperiment(cfg Config, resultDir string) error {
	g, err := gameByName(cfg.Game)
	if err != nil {
		return err
	}

	log.Info().Str("game", cfg.Game).Int("games", cfg.Games).
		Int("agents", len(cfg.Agents)).Msg("starting parallelization experiment")

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	prog := newProgress()
	count := 0

	for ai, agent := range cfg.Agents {
		for i := 0; i < cfg.Games; i++ {
			prog.update("matchup %d/%d game %d/%d", ai+1, len(cfg.Agents), i+1, cfg.Games)

			count++
			record, moves, err := runGame(g, count, cfg, cfg.Baseline, agent)
			if err != nil {
				prog.done()
				return errors.Wrapf(err, "matchup %d game %d failed", ai+1, i+1)
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
		}
	}
	prog.done()

	if err := storeRecords(resultDir, cfg, gameRecords, moveRecords); err != nil {
		return err
	}

	summary := metrics.Summarize(gameRecords, moveRecords)
	log.Info().
		Int("games", summary.Games).
		Float64("mean_moves", summary.MeanMoves).
		Float64("stddev_moves", summary.StdDevMoves).
		Float64("mean_episodes_per_move", summary.MeanEpisodesPerMove).
		Float64("stddev_episodes", summary.StdDevEpisodes).
		Dur("mean_move_duration", summary.MeanMoveDuration).
		Msg("completed parallelization experiment")
	return nil
}

// runGame plays one game, baseline as player 0, and records per-move search
// metrics through the arena's move observer.
func runGame(g game.Game, id int, cfg Config, first, second metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	agents := [2]*searcher.MCTS{newSearcher(g, first), newSearcher(g, second)}

	var moveRecords []metrics.MoveRecord
	observer := func(move, player int, _ game.Action) {
		moveRecords = append(moveRecords, metrics.MoveRecord{
			Game:         id,
			Step:         move,
			Player:       player,
			SearchMetric: agents[player].Metric(),
		})
	}

	options := []arena.Option{arena.WithMoveObserver(observer)}
	if cfg.MoveLimit > 0 {
		options = append(options, arena.WithMoveLimit(cfg.MoveLimit))
	}

	start := time.Now()
	winner, moves, err := arena.New(g, agents[0], agents[1], options...).Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:        id,
		Agent1:    first.ID,
		Agent2:    second.ID,
		Winner:    winner,
		Moves:     moves,
		StartTime: start,
		Duration:  time.Since(start),
	}
	return record, moveRecords, nil
}

func newSearcher(g game.Game, cfg metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{
		searcher.WithMetrics(),
		searcher.WithWorkers(cfg.Workers),
	}
	if cfg.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(cfg.Episodes))
	}
	if cfg.Duration > 0 {
		options = append(options, searcher.WithDuration(time.Duration(cfg.Duration)))
	}
	return searcher.NewMCTS(g, options...)
}

func storeRecords(resultDir string, cfg Config, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(resultDir, "parallelization")
	if err != nil {
		return err
	}

	configs := append([]metrics.AgentConfig{cfg.Baseline}, cfg.Agents...)
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return err
	}

	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")
	return nil
}

func gameByName(name string) (game.Game, error) {
	switch name {
	case "nim":
		return nim.Game{}, nil
	case "dvonn":
		return dvonn.Game{}, nil
	}
	return nil, errors.Errorf("unknown game %q", name)
}
