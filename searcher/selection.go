package searcher

import (
	"math"

	"golang.org/x/exp/rand"
)

// Hyperparameter defaults, empirically reasonable starting values.
const (
	DefaultExploreRate = 0.2
	DefaultExploitRate = 0.2
)

// UCT selects children by win ratio plus a visit-count exploration bonus:
//
//	score = winRatio + 2*C*sqrt(2*ln(parentVisits) / childVisits)
//
// Higher ExploreRate biases selection toward rarely visited children.
type UCT struct {
	ExploreRate float64
}

// NewUCT returns a UCT policy with the default exploration rate.
func NewUCT() UCT {
	return UCT{ExploreRate: DefaultExploreRate}
}

// Select returns the child with the maximum UCT score, first-maximal in
// expansion order on ties.
func (p UCT) Select(node *Node) *Node {
	best := node.children[0]
	bestScore := uctScore(best, p.ExploreRate)
	for _, child := range node.children[1:] {
		if score := uctScore(child, p.ExploreRate); score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// uctScore requires parent and child visit counts >= 1; the select loop
// guarantees that by delegating only once every action has been expanded.
func uctScore(child *Node, exploreRate float64) float64 {
	explore := math.Sqrt(2 * math.Log(child.parent.total) / child.total)
	return child.WinRatio() + 2*exploreRate*explore
}

// EpsilonGreedy picks a uniformly random child with probability epsilon and
// the best win ratio otherwise. Epsilon shrinks as the node accumulates
// visits:
//
//	epsilon = min(1, ExploreRate*numChildren / (ExploitRate^2 * nodeVisits))
type EpsilonGreedy struct {
	ExploreRate float64
	ExploitRate float64
}

// NewEpsilonGreedy returns an EpsilonGreedy policy with default rates.
func NewEpsilonGreedy() EpsilonGreedy {
	return EpsilonGreedy{
		ExploreRate: DefaultExploreRate,
		ExploitRate: DefaultExploitRate,
	}
}

func (p EpsilonGreedy) Select(node *Node) *Node {
	epsilon := math.Min(1, p.ExploreRate*float64(len(node.children))/(p.ExploitRate*p.ExploitRate*node.total))
	if rand.Float64() < epsilon {
		return node.children[rand.Intn(len(node.children))]
	}

	best := node.children[0]
	for _, child := range node.children[1:] {
		if child.WinRatio() > best.WinRatio() {
			best = child
		}
	}
	return best
}
