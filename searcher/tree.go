package searcher

import (
	"golang.org/x/exp/rand"

	"mogo/game"
)

// Node is one vertex of the search tree. Ownership flows strictly from
// parent to children; the parent pointer is traversal-only.
type Node struct {
	game     game.Game
	state    game.State
	action   game.Action // nil for the root
	parent   *Node       // nil for the root
	children []*Node
	won      float64
	total    float64
}

// NewRoot creates the root of a fresh search tree over state. The tree takes
// ownership of state; callers should pass a clone if they intend to keep
// using the original.
func NewRoot(g game.Game, state game.State) *Node {
	return &Node{game: g, state: state}
}

func newChild(parent *Node, state game.State, action game.Action) *Node {
	return &Node{
		game:   parent.game,
		state:  state,
		action: action,
		parent: parent,
	}
}

// Action returns the action that produced this node, nil for the root.
func (n *Node) Action() game.Action { return n.action }

// State returns the node's owned state snapshot.
func (n *Node) State() game.State { return n.state }

// Parent returns the node this one was expanded from, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in expansion order.
func (n *Node) Children() []*Node { return n.children }

// Won returns the accumulated win credit. May be fractional after merges.
func (n *Node) Won() float64 { return n.won }

// Total returns the accumulated visit count.
func (n *Node) Total() float64 { return n.total }

// WinRatio is won/total, or exactly 0 for an unvisited node. It expresses
// the win probability for the player about to move at this node.
func (n *Node) WinRatio() float64 {
	if n.total == 0 {
		return 0
	}
	return n.won / n.total
}

// Select walks the tree from n looking for the next node to simulate from.
// At each step, a node with unexplored legal actions expands exactly one new
// child (for an action chosen uniformly at random) and returns it; a fully
// expanded node delegates the descent to policy. Terminal nodes are returned
// immediately.
func (n *Node) Select(policy SelectionPolicy) *Node {
	node := n
	for !node.game.IsOver(node.state) {
		if unexplored := node.unexploredActions(); len(unexplored) > 0 {
			return node.expand(unexplored)
		}
		node = policy.Select(node)
	}
	return node
}

func (n *Node) unexploredActions() []game.Action {
	legal := n.game.LegalActions(n.state)
	explored := make(map[game.Action]bool, len(n.children))
	for _, child := range n.children {
		explored[child.action] = true
	}

	var unexplored []game.Action
	for _, action := range legal {
		if !explored[action] {
			unexplored = append(unexplored, action)
		}
	}
	return unexplored
}

func (n *Node) expand(unexplored []game.Action) *Node {
	action := unexplored[rand.Intn(len(unexplored))]
	state := n.state.Clone()
	n.game.Do(state, action)

	child := newChild(n, state, action)
	n.children = append(n.children, child)
	return child
}

// Simulate plays out a complete game from a clone of the node's state,
// choosing actions with policy, and returns the winning player.
func (n *Node) Simulate(policy SimulationPolicy) (int, error) {
	state := n.state.Clone()
	for !n.game.IsOver(state) {
		n.game.Do(state, policy.Action(n.game, state))
	}
	return n.game.Result(state)
}

// Backup applies policy at every node on the path from n up to and including
// the root, exactly once each.
func (n *Node) Backup(winner int, policy BackupPolicy) {
	for node := n; node != nil; node = node.parent {
		policy.Update(node, winner)
	}
}

// BestAction returns the action of the child with the highest win ratio.
// Ties resolve to the first maximal child in expansion order. Returns
// ErrNoChildren when the node has none.
func (n *Node) BestAction() (game.Action, error) {
	if len(n.children) == 0 {
		return nil, ErrNoChildren
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.WinRatio() > best.WinRatio() {
			best = child
		}
	}
	return best.action, nil
}

// Combine merges the direct children of other into n, summing won/total per
// action. Actions known only to other become new children of n, with their
// state produced by replaying the action from n's own state. Statistics
// below the first ply of other are discarded: this is a deliberate depth-1
// aggregation for root parallelization, not a tree union. Per-action sums
// are commutative, so the order trees are combined in does not matter.
func (n *Node) Combine(other *Node) {
	wonByAction := make(map[game.Action]float64, len(n.children))
	totalByAction := make(map[game.Action]float64, len(n.children))
	for _, child := range n.children {
		wonByAction[child.action] += child.won
		totalByAction[child.action] += child.total
	}

	for _, child := range other.children {
		if _, known := totalByAction[child.action]; !known {
			state := n.state.Clone()
			n.game.Do(state, child.action)
			n.children = append(n.children, newChild(n, state, child.action))
		}
		wonByAction[child.action] += child.won
		totalByAction[child.action] += child.total
	}

	for _, child := range n.children {
		child.won = wonByAction[child.action]
		child.total = totalByAction[child.action]
	}
}
