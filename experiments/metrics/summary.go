package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a finished experiment run.
type Summary struct {
	Games               int
	MeanMoves           float64
	StdDevMoves         float64
	MeanEpisodesPerMove float64
	StdDevEpisodes      float64
	MeanMoveDuration    time.Duration
}

// Summarize computes run-level statistics over game and move records.
func Summarize(games []GameRecord, moves []MoveRecord) Summary {
	summary := Summary{Games: len(games)}

	if len(games) > 0 {
		lengths := make([]float64, len(games))
		for i, g := range games {
			lengths[i] = float64(g.Moves)
		}
		summary.MeanMoves = stat.Mean(lengths, nil)
		summary.StdDevMoves = stat.StdDev(lengths, nil)
	}

	if len(moves) > 0 {
		episodes := make([]float64, len(moves))
		var total time.Duration
		for i, m := range moves {
			episodes[i] = float64(m.Episodes)
			total += m.Duration
		}
		summary.MeanEpisodesPerMove = stat.Mean(episodes, nil)
		summary.StdDevEpisodes = stat.StdDev(episodes, nil)
		summary.MeanMoveDuration = total / time.Duration(len(moves))
	}

	return summary
}
