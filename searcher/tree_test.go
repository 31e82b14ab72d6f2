package searcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"mogo/game"
)

func TestSelect(t *testing.T) {
	t.Run("expands one new child per call while actions remain", func(t *testing.T) {
		g := mockGame{branching: 3, maxDepth: 2, winner: 0}
		root := NewRoot(g, g.NewGame())
		policy := NewUCT()

		seen := map[game.Action]bool{}
		for i := 0; i < 3; i++ {
			node := root.Select(policy)

			require.Equal(t, root, node.Parent(), "Expansion should attach the child to the node being expanded")
			require.False(t, seen[node.Action()], "Expanded actions should be pairwise distinct")
			seen[node.Action()] = true
			node.Backup(0, WinLossBackup{})
		}
		require.Len(t, root.Children(), 3, "Every legal action should be explored once")
	})

	t.Run("descends through fully expanded nodes", func(t *testing.T) {
		g := mockGame{branching: 1, maxDepth: 2, winner: 0}
		root := NewRoot(g, g.NewGame())
		policy := NewUCT()

		child := root.Select(policy)
		child.Backup(0, WinLossBackup{})

		grandchild := root.Select(policy)
		require.Equal(t, child, grandchild.Parent(), "Select should descend into the only child and expand below it")
	})

	t.Run("returns terminal nodes immediately", func(t *testing.T) {
		g := mockGame{branching: 3, maxDepth: 0, winner: 0}
		root := NewRoot(g, g.NewGame())

		node := root.Select(NewUCT())

		require.Equal(t, root, node, "Terminal root should be returned as-is")
		require.Empty(t, root.Children(), "Terminal nodes should never expand")
	})
}

func TestSimulate(t *testing.T) {
	t.Run("plays out to the terminal result", func(t *testing.T) {
		g := mockGame{branching: 2, maxDepth: 5, winner: 1}
		root := NewRoot(g, g.NewGame())

		winner, err := root.Simulate(RandomSimulation{})

		require.NoError(t, err)
		require.Equal(t, 1, winner, "Simulation should report the game's winner")
		require.Equal(t, 0, root.State().(*mockState).depth, "Simulation must not mutate the node's own state")
	})

	t.Run("propagates a failing result query", func(t *testing.T) {
		wantErr := errors.New("boom")
		g := mockGame{branching: 2, maxDepth: 1, resultErr: wantErr}
		root := NewRoot(g, g.NewGame())

		_, err := root.Simulate(RandomSimulation{})

		require.ErrorIs(t, err, wantErr, "Collaborator failures should surface unchanged")
	})
}

func TestBackup(t *testing.T) {
	t.Run("updates every ancestor up to the root exactly once", func(t *testing.T) {
		g := mockGame{branching: 1, maxDepth: 3, winner: 0}
		root := NewRoot(g, g.NewGame())
		child := root.Select(NewUCT())
		child.Backup(0, WinLossBackup{})
		grandchild := root.Select(NewUCT())

		recorder := &recordingBackup{}
		grandchild.Backup(0, recorder)

		require.Equal(t, []*Node{grandchild, child, root}, recorder.visited,
			"Backup should walk the path to the root with no skips or repeats")
	})

	t.Run("credits wins to the player about to move", func(t *testing.T) {
		g := mockGame{branching: 1, maxDepth: 2, winner: 0}
		root := NewRoot(g, g.NewGame()) // player 0 to move
		child := root.Select(NewUCT())  // player 1 to move

		child.Backup(0, WinLossBackup{})

		require.Equal(t, 1.0, root.Total(), "Root should gain a visit")
		require.Equal(t, 1.0, root.Won(), "Root's mover won, so it gains a win")
		require.Equal(t, 1.0, child.Total(), "Child should gain a visit")
		require.Equal(t, 0.0, child.Won(), "Child's mover lost, so no win credit")
	})
}

func TestWinRatio(t *testing.T) {
	t.Run("is zero without visits", func(t *testing.T) {
		node := &Node{}
		require.Equal(t, 0.0, node.WinRatio(), "Unvisited nodes must report 0, never NaN")
	})

	t.Run("is won over total", func(t *testing.T) {
		node := &Node{won: 1, total: 3}
		require.InDelta(t, 1.0/3.0, node.WinRatio(), 1e-9)
	})
}

func TestBestAction(t *testing.T) {
	t.Run("fails without children", func(t *testing.T) {
		g := mockGame{branching: 0, maxDepth: 0}
		root := NewRoot(g, g.NewGame())

		_, err := root.BestAction()

		require.ErrorIs(t, err, ErrNoChildren)
	})

	t.Run("returns the child with the best win ratio", func(t *testing.T) {
		root := &Node{}
		root.children = []*Node{
			{parent: root, action: mockAction{id: 0}, won: 1, total: 4},
			{parent: root, action: mockAction{id: 1}, won: 3, total: 4},
			{parent: root, action: mockAction{id: 2}, won: 2, total: 4},
		}

		action, err := root.BestAction()

		require.NoError(t, err)
		require.Equal(t, mockAction{id: 1}, action)
	})

	t.Run("resolves ties to the first child", func(t *testing.T) {
		root := &Node{}
		root.children = []*Node{
			{parent: root, action: mockAction{id: 0}, won: 2, total: 4},
			{parent: root, action: mockAction{id: 1}, won: 2, total: 4},
		}

		action, err := root.BestAction()

		require.NoError(t, err)
		require.Equal(t, mockAction{id: 0}, action, "First-maximal child should win ties")
	})
}

func TestCombine(t *testing.T) {
	g := mockGame{branching: 3, maxDepth: 2, winner: 0}

	// rootWith builds a root whose children carry the given (won, total)
	// stats keyed by action id.
	rootWith := func(stats map[int][2]float64) *Node {
		root := NewRoot(g, g.NewGame())
		for id, s := range stats {
			state := root.state.Clone()
			g.Do(state, mockAction{id: id})
			child := newChild(root, state, mockAction{id: id})
			child.won, child.total = s[0], s[1]
			root.children = append(root.children, child)
		}
		return root
	}

	childStats := func(root *Node) map[game.Action][2]float64 {
		stats := map[game.Action][2]float64{}
		for _, c := range root.Children() {
			stats[c.Action()] = [2]float64{c.Won(), c.Total()}
		}
		return stats
	}

	t.Run("sums statistics for shared actions", func(t *testing.T) {
		a := rootWith(map[int][2]float64{0: {1, 1}})
		b := rootWith(map[int][2]float64{0: {0, 2}})

		a.Combine(b)

		require.Len(t, a.Children(), 1)
		require.Equal(t, 1.0, a.Children()[0].Won())
		require.Equal(t, 3.0, a.Children()[0].Total())
		require.InDelta(t, 1.0/3.0, a.Children()[0].WinRatio(), 1e-9)
	})

	t.Run("adopts actions known only to the other tree", func(t *testing.T) {
		a := rootWith(map[int][2]float64{0: {1, 2}})
		b := rootWith(map[int][2]float64{1: {2, 3}})

		a.Combine(b)

		require.Len(t, a.Children(), 2, "Unknown actions should become new children")
		stats := childStats(a)
		require.Equal(t, [2]float64{1, 2}, stats[mockAction{id: 0}])
		require.Equal(t, [2]float64{2, 3}, stats[mockAction{id: 1}])

		adopted := a.Children()[1]
		require.Equal(t, a, adopted.Parent(), "Adopted child should belong to the receiver")
		require.Equal(t, 1, adopted.State().(*mockState).depth,
			"Adopted child state should be replayed from the receiver's state")
	})

	t.Run("per-action sums are order independent", func(t *testing.T) {
		stats := []map[int][2]float64{
			{0: {1, 2}, 1: {0, 1}},
			{0: {2, 2}, 2: {1, 3}},
			{1: {1, 4}, 2: {0, 1}},
		}

		// A + (B + C)
		left := rootWith(stats[0])
		bc := rootWith(stats[1])
		bc.Combine(rootWith(stats[2]))
		left.Combine(bc)

		// (C + A) + B
		right := rootWith(stats[2])
		right.Combine(rootWith(stats[0]))
		right.Combine(rootWith(stats[1]))

		require.Equal(t, childStats(left), childStats(right),
			"Combining in any pairwise order should yield identical per-action sums")
	})
}
