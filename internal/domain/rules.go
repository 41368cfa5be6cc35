package domain

// FindWinningLine scans the whole board for four connected disks of the
// given player and returns the first matching window in scan order:
// horizontal, vertical, diagonal down-right, diagonal up-right. The order
// has no effect on the outcome but keeps fixtures deterministic.
func FindWinningLine(board [][]PlayerID, player PlayerID) (WinLine, bool) {
	// horizontal sequences
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == player &&
				board[r][c+1] == player &&
				board[r][c+2] == player &&
				board[r][c+3] == player {
				return WinLine{{r, c}, {r, c + 1}, {r, c + 2}, {r, c + 3}}, true
			}
		}
	}

	// vertical sequences, walked bottom-up the way columns fill
	for c := 0; c < Columns; c++ {
		for r := Rows - 1; r >= ToWin-1; r-- {
			if board[r][c] == player &&
				board[r-1][c] == player &&
				board[r-2][c] == player &&
				board[r-3][c] == player {
				return WinLine{{r, c}, {r - 1, c}, {r - 2, c}, {r - 3, c}}, true
			}
		}
	}

	// diagonal down-right sequences
	for r := 0; r <= Rows-ToWin; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == player &&
				board[r+1][c+1] == player &&
				board[r+2][c+2] == player &&
				board[r+3][c+3] == player {
				return WinLine{{r, c}, {r + 1, c + 1}, {r + 2, c + 2}, {r + 3, c + 3}}, true
			}
		}
	}

	// diagonal up-right sequences
	for r := ToWin - 1; r < Rows; r++ {
		for c := 0; c <= Columns-ToWin; c++ {
			if board[r][c] == player &&
				board[r-1][c+1] == player &&
				board[r-2][c+2] == player &&
				board[r-3][c+3] == player {
				return WinLine{{r, c}, {r - 1, c + 1}, {r - 2, c + 2}, {r - 3, c + 3}}, true
			}
		}
	}

	return nil, false
}
