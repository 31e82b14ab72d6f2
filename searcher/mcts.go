// Package searcher implements a generic Monte Carlo Tree Search engine over
// the game capability contract: repeated select/simulate/backup cycles grow
// a decision tree, and the root's best child is the recommended move.
package searcher

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mogo/game"
)

type Option func(m *MCTS)

// MCTS runs searches against one game's rules. A single MCTS value may be
// reused across Search calls; each call grows and discards its own tree.
type MCTS struct {
	game       game.Game
	selection  SelectionPolicy
	simulation SimulationPolicy
	backup     BackupPolicy
	episodes   int
	duration   time.Duration
	workers    int
	metrics    Collector
	lastMetric SearchMetric
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithWorkers enables root-parallel search: workers independent trees grown
// concurrently and merged at the join barrier.
func WithWorkers(workers int) Option {
	return func(m *MCTS) {
		if workers > 0 {
			m.workers = workers
		}
	}
}

func WithSelectionPolicy(policy SelectionPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.selection = policy
		}
	}
}

func WithSimulationPolicy(policy SimulationPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.simulation = policy
		}
	}
}

func WithBackupPolicy(policy BackupPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.backup = policy
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(g game.Game, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		game:       g,
		selection:  NewUCT(),
		simulation: RandomSimulation{},
		backup:     WinLossBackup{},
		workers:    1,
		metrics:    NewNoCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Search grows a fresh tree from state and returns the recommended action.
// The tree is discarded before returning; nothing is reused across calls.
func (m *MCTS) Search(state game.State) (game.Action, error) {
	logger := log.With().Str("search_id", uuid.NewString()).Logger()
	m.metrics.Start(m.workers)

	var action game.Action
	var err error
	if m.workers > 1 {
		action, err = m.searchParallel(state, logger)
	} else {
		action, err = m.searchSequential(state)
	}
	if err != nil {
		return nil, err
	}

	metric := m.metrics.Complete()
	m.lastMetric = metric
	logger.Debug().
		Int("workers", m.workers).
		Int64("episodes", metric.Episodes).
		Dur("elapsed", metric.Duration).
		Stringer("action", action).
		Msg("search complete")
	return action, nil
}

// Metric returns the metric of the most recent successful Search call.
// Zero-valued unless the MCTS was built with WithMetrics.
func (m *MCTS) Metric() SearchMetric {
	return m.lastMetric
}

func (m *MCTS) searchSequential(state game.State) (game.Action, error) {
	root := NewRoot(m.game, state.Clone())
	if err := m.grow(root, m.episodes); err != nil {
		return nil, err
	}
	return root.BestAction()
}

// searchParallel grows one private tree per worker from a fresh clone of
// state, waits for all of them, then folds the roots together with Combine.
// Workers share nothing while growing; the join barrier is the only
// synchronization point. Any worker failure aborts the whole search.
func (m *MCTS) searchParallel(state game.State, logger zerolog.Logger) (game.Action, error) {
	type result struct {
		worker int
		root   *Node
		err    error
	}

	shares := splitBudget(m.episodes, m.workers)
	results := make(chan result, m.workers)

	var wg sync.WaitGroup
	for w := 0; w < m.workers; w++ {
		wg.Add(1)
		go func(worker, episodes int) {
			defer wg.Done()

			root := NewRoot(m.game, state.Clone())
			err := m.grow(root, episodes)
			results <- result{worker: worker, root: root, err: err}
		}(w, shares[w])
	}
	wg.Wait()
	close(results)

	var roots []*Node
	var errs error
	for r := range results {
		if r.err != nil {
			errs = multierror.Append(errs, &WorkerError{Worker: r.worker, Err: r.err})
			continue
		}
		roots = append(roots, r.root)
	}
	if errs != nil {
		logger.Error().Err(errs).Msg("parallel search aborted")
		return nil, errs
	}

	// Depth-1 merge into an accumulator. Per-action sums commute, so the
	// order workers landed in the channel does not affect the totals.
	accumulator := roots[0]
	for _, root := range roots[1:] {
		accumulator.Combine(root)
	}
	return accumulator.BestAction()
}

// grow runs select/simulate/backup cycles on root until the episode budget
// is spent, or until the configured duration elapses when episodes <= 0.
// The deadline is only checked between cycles: a cycle in progress always
// completes, so the duration can be slightly overrun.
func (m *MCTS) grow(root *Node, episodes int) error {
	if m.episodes > 0 {
		for i := 0; i < episodes; i++ {
			if err := m.cycle(root); err != nil {
				return err
			}
		}
		return nil
	}

	deadline := time.Now().Add(m.duration)
	for time.Now().Before(deadline) {
		if err := m.cycle(root); err != nil {
			return err
		}
	}
	return nil
}

func (m *MCTS) cycle(root *Node) error {
	node := root.Select(m.selection)
	winner, err := node.Simulate(m.simulation)
	if err != nil {
		return err
	}
	node.Backup(winner, m.backup)
	m.metrics.AddEpisode()
	return nil
}

// splitBudget divides episodes evenly across workers, giving the remainder
// to the first workers. Zero or negative budgets (duration mode) stay zero.
func splitBudget(episodes, workers int) []int {
	shares := make([]int, workers)
	if episodes <= 0 {
		return shares
	}
	for w := range shares {
		shares[w] = episodes / workers
		if w < episodes%workers {
			shares[w]++
		}
	}
	return shares
}
