package domain

func NewBoard() [][]PlayerID {
	board := make([][]PlayerID, Rows)
	for i := range board {
		board[i] = make([]PlayerID, Columns)
	}
	return board
}

func IsValidMove(board [][]PlayerID, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// board[0] is the top row (0 -> top, 5 -> bottom)
	if board[0][column] != Empty {
		return false
	}

	return true
}

// LowestOpenRow scans column from the bottom up and returns the first
// empty row, or -1 when the column is full or out of range. A UI can
// probe arbitrary input through this without tripping anything.
func LowestOpenRow(board [][]PlayerID, column int) int {
	if column < 0 || column >= Columns {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			return row
		}
	}
	return -1
}

// DropDisk places a disk at the lowest open row of the column. The board
// is mutated in place, so callers must own it exclusively; search code
// goes through SimulateMove instead.
func DropDisk(board [][]PlayerID, column int, player PlayerID) (int, error) {
	row := LowestOpenRow(board, column)
	if row < 0 {
		return -1, ErrColumnFull
	}
	board[row][column] = player
	return row, nil
}

func IsBoardFull(board [][]PlayerID) bool {
	for c := 0; c < Columns; c++ {
		if board[0][c] == Empty {
			return false
		}
	}

	return true
}

// this creates a deep copy of the board
func CopyBoard(board [][]PlayerID) [][]PlayerID {
	newBoard := make([][]PlayerID, len(board))
	for i := range board {
		newBoard[i] = make([]PlayerID, len(board[i]))
		copy(newBoard[i], board[i])
	}
	return newBoard
}

func GetValidMoves(board [][]PlayerID) []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if board[0][col] == Empty {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// SimulateMove drops a disk on a copy of the board and returns the copy,
// leaving the original untouched. On a full or out-of-range column the
// original board is returned unchanged alongside the error.
func SimulateMove(board [][]PlayerID, column int, player PlayerID) ([][]PlayerID, int, error) {
	row := LowestOpenRow(board, column)
	if row < 0 {
		return board, -1, ErrColumnFull
	}
	newBoard := CopyBoard(board)
	newBoard[row][column] = player
	return newBoard, row, nil
}
