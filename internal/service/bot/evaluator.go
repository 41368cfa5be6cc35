package bot

import (
	"github.com/ZuraLog/connect4/internal/domain"
)

const (
	WINDOW_FOUR       = 100 // four own disks in a window
	WINDOW_THREE      = 5   // three own disks plus one open cell
	WINDOW_TWO        = 2   // two own disks plus two open cells
	WINDOW_OPP_THREE  = -4  // opponent one move from completing the window
	CENTER_CELL_BONUS = 3   // per own disk in the center column
)

// scoreWindow rates one 4-cell window for player. The scale rewards own
// near-wins more strongly than it penalizes the opponent's, which keeps
// the bot leaning toward offense.
func scoreWindow(window []domain.PlayerID, player domain.PlayerID) int {
	opponent := domain.Opponent(player)

	playerCount, opponentCount, emptyCount := 0, 0, 0
	for _, cell := range window {
		switch cell {
		case player:
			playerCount++
		case opponent:
			opponentCount++
		default:
			emptyCount++
		}
	}

	switch {
	case playerCount == 4:
		return WINDOW_FOUR
	case playerCount == 3 && emptyCount == 1:
		return WINDOW_THREE
	case playerCount == 2 && emptyCount == 2:
		return WINDOW_TWO
	case opponentCount == 3 && emptyCount == 1:
		return WINDOW_OPP_THREE
	}
	return 0
}

// Evaluate scores a non-terminal board for player: the sum of scoreWindow
// over every 4-cell window on all four axes, plus a bonus per own disk in
// the center column. Central disks sit in more potential windows, so the
// bonus counts once per disk, not once per window.
func Evaluate(board [][]domain.PlayerID, player domain.PlayerID) int {
	score := 0

	centerCol := domain.Columns / 2
	for r := 0; r < domain.Rows; r++ {
		if board[r][centerCol] == player {
			score += CENTER_CELL_BONUS
		}
	}

	// horizontal windows
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			window := []domain.PlayerID{board[r][c], board[r][c+1], board[r][c+2], board[r][c+3]}
			score += scoreWindow(window, player)
		}
	}

	// vertical windows
	for c := 0; c < domain.Columns; c++ {
		for r := 0; r <= domain.Rows-domain.ToWin; r++ {
			window := []domain.PlayerID{board[r][c], board[r+1][c], board[r+2][c], board[r+3][c]}
			score += scoreWindow(window, player)
		}
	}

	// diagonal down-right windows
	for r := 0; r <= domain.Rows-domain.ToWin; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			window := []domain.PlayerID{board[r][c], board[r+1][c+1], board[r+2][c+2], board[r+3][c+3]}
			score += scoreWindow(window, player)
		}
	}

	// diagonal up-right windows
	for r := domain.ToWin - 1; r < domain.Rows; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			window := []domain.PlayerID{board[r][c], board[r-1][c+1], board[r-2][c+2], board[r-3][c+3]}
			score += scoreWindow(window, player)
		}
	}

	return score
}
