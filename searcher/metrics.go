package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one Search call.
type SearchMetric struct {
	Workers  int
	Episodes int64
	Duration time.Duration
}

// Collector gathers per-search metrics. AddEpisode may be called from
// multiple workers concurrently.
type Collector interface {
	Start(workers int)
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	workers   int
	startTime time.Time
	episodes  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(workers int) {
	c.workers = workers
	c.startTime = time.Now()
	c.episodes.Store(0)
}

func (c *collector) AddEpisode() {
	c.episodes.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Workers:  c.workers,
		Episodes: c.episodes.Load(),
		Duration: time.Since(c.startTime),
	}
}

type noCollector struct{}

// NewNoCollector returns a collector that records nothing. It is the default
// so that searches pay no metrics cost unless asked to.
func NewNoCollector() Collector {
	return noCollector{}
}

func (noCollector) Start(workers int)      {}
func (noCollector) AddEpisode()            {}
func (noCollector) Complete() SearchMetric { return SearchMetric{} }
