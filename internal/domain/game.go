package domain

type Game struct {
	Board         [][]PlayerID
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	WinLine       WinLine
	MoveCount     int
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Player1,
		Status:        StatusActive,
		Winner:        Empty,
		MoveCount:     0,
	}
}

// MakeMove applies one move for player. A finished game, an out-of-turn
// player or an unplayable column is rejected with a sentinel error and
// the game is left exactly as it was.
func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameFinished
	}

	if player != g.CurrentPlayer {
		return -1, ErrNotYourTurn
	}

	if !IsValidMove(g.Board, column) {
		return -1, ErrInvalidMove
	}

	row, err := DropDisk(g.Board, column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.MoveCount++

	if line, won := FindWinningLine(g.Board, g.CurrentPlayer); won {
		if g.CurrentPlayer == Player1 {
			g.Status = StatusPlayer1Won
		} else {
			g.Status = StatusPlayer2Won
		}
		g.Winner = g.CurrentPlayer
		g.WinLine = line
		return row, nil
	}

	if IsBoardFull(g.Board) {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = Opponent(g.CurrentPlayer)

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status != StatusActive
}

// Reset discards the board and returns to the initial state, regardless
// of how the previous game ended.
func (g *Game) Reset() {
	*g = *NewGame()
}
