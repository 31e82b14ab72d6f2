package searcher

import (
	"errors"
	"fmt"
)

// ErrNoChildren is returned by BestAction on a node that was never expanded,
// e.g. when the search budget ran out before the first cycle or the root
// state was already terminal.
var ErrNoChildren = errors.New("node has no children")

// WorkerError wraps the failure of one parallel search worker. Any worker
// failing is fatal to the whole parallel search; no partial aggregation is
// attempted.
type WorkerError struct {
	Worker int
	Err    error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d: %v", e.Worker, e.Err)
}

func (e *WorkerError) Unwrap() error {
	return e.Err
}
