package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g := NewGame()

	require.Equal(t, StatusActive, g.Status, "new game should be active")
	require.Equal(t, Player1, g.CurrentPlayer, "human moves first")
	require.Equal(t, Empty, g.Winner, "no winner yet")
	require.Nil(t, g.WinLine, "no win line yet")
	require.Zero(t, g.MoveCount)
}

func TestMakeMoveRejections(t *testing.T) {
	t.Run("out of turn mover is rejected without side effects", func(t *testing.T) {
		g := NewGame()

		_, err := g.MakeMove(Player2, 3)

		require.ErrorIs(t, err, ErrNotYourTurn, "bot cannot move on the human's turn")
		require.Zero(t, g.MoveCount, "rejected move should not count")
		require.Equal(t, Player1, g.CurrentPlayer, "turn should not pass")
		require.Equal(t, Empty, g.Board[Rows-1][3], "no disk should be placed")
	})

	t.Run("invalid columns are rejected", func(t *testing.T) {
		g := NewGame()

		_, err := g.MakeMove(Player1, -1)
		require.ErrorIs(t, err, ErrInvalidMove, "negative column should be rejected")

		_, err = g.MakeMove(Player1, Columns)
		require.ErrorIs(t, err, ErrInvalidMove, "column past the edge should be rejected")
	})

	t.Run("full column is rejected", func(t *testing.T) {
		g := NewGame()
		for i := 0; i < Rows; i++ {
			player := g.CurrentPlayer
			_, err := g.MakeMove(player, 2)
			require.NoError(t, err)
		}

		mover := g.CurrentPlayer
		_, err := g.MakeMove(mover, 2)
		require.ErrorIs(t, err, ErrInvalidMove, "column filled to the top should be rejected")
		require.Equal(t, mover, g.CurrentPlayer, "turn should not pass on a rejected move")
	})
}

func TestMakeMoveAlternatesTurns(t *testing.T) {
	g := NewGame()

	_, err := g.MakeMove(Player1, 0)
	require.NoError(t, err)
	require.Equal(t, Player2, g.CurrentPlayer, "turn should pass to the bot")

	_, err = g.MakeMove(Player2, 1)
	require.NoError(t, err)
	require.Equal(t, Player1, g.CurrentPlayer, "turn should pass back to the human")
	require.Equal(t, 2, g.MoveCount)
}

func TestMakeMoveWin(t *testing.T) {
	g := NewGame()

	// human stacks column 0, bot stacks column 6
	for i := 0; i < 3; i++ {
		_, err := g.MakeMove(Player1, 0)
		require.NoError(t, err)
		_, err = g.MakeMove(Player2, 6)
		require.NoError(t, err)
	}

	_, err := g.MakeMove(Player1, 0)
	require.NoError(t, err)

	require.Equal(t, StatusPlayer1Won, g.Status, "fourth stacked disk should win")
	require.Equal(t, Player1, g.Winner)
	require.Equal(t, WinLine{{5, 0}, {4, 0}, {3, 0}, {2, 0}}, g.WinLine,
		"win line should be captured for highlighting")
	require.True(t, g.IsFinished())

	_, err = g.MakeMove(Player2, 6)
	require.ErrorIs(t, err, ErrGameFinished, "no moves after a win")
}

func TestMakeMoveDraw(t *testing.T) {
	g := NewGame()

	// a full board with no four-in-a-row, one cell short
	g.Board = boardFromRows(t, []string{
		"XOXOXO.",
		"XOXOXOX",
		"OXOXOXO",
		"OXOXOXO",
		"XOXOXOX",
		"XOXOXOX",
	})
	g.MoveCount = Rows*Columns - 1
	g.CurrentPlayer = Player1

	_, err := g.MakeMove(Player1, 6)
	require.NoError(t, err, "last open cell should accept a move")

	require.Equal(t, StatusDraw, g.Status, "full board without a winner is a draw")
	require.Equal(t, Empty, g.Winner, "a draw has no winner")
	require.Nil(t, g.WinLine, "a draw has no line to highlight")
	require.True(t, g.IsFinished())

	_, err = g.MakeMove(Player2, 0)
	require.ErrorIs(t, err, ErrGameFinished, "no moves after a draw")
	_, err = g.MakeMove(Player1, 0)
	require.ErrorIs(t, err, ErrGameFinished, "no moves after a draw for either player")
}

func TestReset(t *testing.T) {
	g := NewGame()
	for i := 0; i < 3; i++ {
		_, err := g.MakeMove(Player1, 0)
		require.NoError(t, err)
		_, err = g.MakeMove(Player2, 6)
		require.NoError(t, err)
	}
	_, err := g.MakeMove(Player1, 0)
	require.NoError(t, err)
	require.True(t, g.IsFinished(), "setup should end in a win")

	g.Reset()

	require.Equal(t, StatusActive, g.Status, "reset should return to the initial state")
	require.Equal(t, Player1, g.CurrentPlayer, "human moves first after reset")
	require.Equal(t, Empty, g.Winner)
	require.Nil(t, g.WinLine)
	require.Zero(t, g.MoveCount)
	require.Equal(t, NewBoard(), g.Board, "board should be cleared")
}
