package nim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mogo/game"
)

func TestLegalActions(t *testing.T) {
	g := Game{}

	t.Run("opening position permits any take from any heap", func(t *testing.T) {
		actions := g.LegalActions(g.NewGame())

		require.Len(t, actions, 3+4+5)
		for take := 1; take <= 3; take++ {
			require.Contains(t, actions, game.Action(Action{Heap: 0, Take: take}))
		}
		for take := 1; take <= 4; take++ {
			require.Contains(t, actions, game.Action(Action{Heap: 1, Take: take}))
		}
		for take := 1; take <= 5; take++ {
			require.Contains(t, actions, game.Action(Action{Heap: 2, Take: take}))
		}
	})

	t.Run("empty heaps offer no actions", func(t *testing.T) {
		actions := g.LegalActions(NewState([]int{2, 0, 1}, 0))

		require.ElementsMatch(t, []game.Action{
			Action{Heap: 0, Take: 1},
			Action{Heap: 0, Take: 2},
			Action{Heap: 2, Take: 1},
		}, actions)
	})
}

func TestDo(t *testing.T) {
	g := Game{}
	state := g.NewGame()

	g.Do(state, Action{Heap: 0, Take: 3})

	s := state.(*State)
	require.Equal(t, []int{0, 4, 5}, s.Heaps)
	require.Equal(t, 1, s.CurrentPlayer, "Taking should advance the turn")

	g.Do(state, Action{Heap: 1, Take: 2})

	require.Equal(t, []int{0, 2, 5}, s.Heaps)
	require.Equal(t, 0, s.CurrentPlayer)
}

func TestGameOver(t *testing.T) {
	g := Game{}

	t.Run("over only when all heaps are empty", func(t *testing.T) {
		require.True(t, g.IsOver(NewState([]int{0, 0, 0}, 0)))
		require.False(t, g.IsOver(NewState([]int{2, 0, 1}, 0)))
		require.False(t, g.IsOver(g.NewGame()))
	})

	t.Run("winner is the previous player", func(t *testing.T) {
		winner, err := g.Result(NewState([]int{0, 0, 0}, 0))

		require.NoError(t, err)
		require.Equal(t, 1, winner, "The final take advanced the turn, so the winner is the other player")
	})

	t.Run("result of a live game fails", func(t *testing.T) {
		_, err := g.Result(NewState([]int{2, 0, 1}, 0))

		require.ErrorIs(t, err, game.ErrNotTerminal)
	})
}

func TestClone(t *testing.T) {
	original := NewState([]int{3, 4, 5}, 1)

	clone := original.Clone().(*State)
	clone.Heaps[0] = 0
	clone.CurrentPlayer = 0

	require.Equal(t, []int{3, 4, 5}, original.Heaps, "Clones must not alias the original's heaps")
	require.Equal(t, 1, original.CurrentPlayer)
}
