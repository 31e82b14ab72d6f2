package searcher

import (
	"fmt"

	"mogo/game"
)

type mockAction struct {
	id int
}

func (a mockAction) String() string {
	return fmt.Sprintf("action %d", a.id)
}

type mockState struct {
	player int
	depth  int
}

func (s *mockState) Player() int {
	return s.player
}

func (s *mockState) Clone() game.State {
	clone := *s
	return &clone
}

// mockGame is a trivial alternating game: branching actions per turn, over
// after maxDepth moves, with a fixed winner. resultErr simulates a broken
// collaborator whose Result fails.
type mockGame struct {
	branching int
	maxDepth  int
	winner    int
	resultErr error
}

func (g mockGame) NewGame() game.State {
	return &mockState{}
}

func (g mockGame) LegalActions(state game.State) []game.Action {
	s := state.(*mockState)
	if s.depth >= g.maxDepth {
		return nil
	}
	actions := make([]game.Action, g.branching)
	for i := range actions {
		actions[i] = mockAction{id: i}
	}
	return actions
}

func (g mockGame) Do(state game.State, action game.Action) {
	s := state.(*mockState)
	s.depth++
	s.player = 1 - s.player
}

func (g mockGame) IsOver(state game.State) bool {
	return state.(*mockState).depth >= g.maxDepth
}

func (g mockGame) Result(state game.State) (int, error) {
	if !g.IsOver(state) {
		return 0, game.ErrNotTerminal
	}
	if g.resultErr != nil {
		return 0, g.resultErr
	}
	return g.winner, nil
}

// recordingBackup captures the nodes a backup pass visits.
type recordingBackup struct {
	visited []*Node
}

func (b *recordingBackup) Update(node *Node, winner int) {
	b.visited = append(b.visited, node)
}
