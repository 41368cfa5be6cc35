package bot

import (
	"math"

	"github.com/ZuraLog/connect4/internal/domain"
)

// calculateMediumMove is a one-ply greedy policy: win or block when
// possible, otherwise pick the drop whose resulting board evaluates best,
// preferring center-most columns on equal scores.
func calculateMediumMove(board [][]domain.PlayerID, botPlayer domain.PlayerID) int {
	validColumns := domain.GetValidMoves(board)
	if len(validColumns) == 0 {
		panic("bot: no valid moves, move requested on a full board")
	}

	opponent := domain.Opponent(botPlayer)

	for _, col := range validColumns {
		testBoard, _, err := domain.SimulateMove(board, col, botPlayer)
		if err != nil {
			continue
		}
		if _, won := domain.FindWinningLine(testBoard, botPlayer); won {
			return col
		}
	}

	for _, col := range validColumns {
		testBoard, _, err := domain.SimulateMove(board, col, opponent)
		if err != nil {
			continue
		}
		if _, won := domain.FindWinningLine(testBoard, opponent); won {
			return col
		}
	}

	center := domain.Columns / 2
	bestCol := validColumns[0]
	bestScore := math.MinInt32

	for _, col := range validColumns {
		testBoard, _, err := domain.SimulateMove(board, col, botPlayer)
		if err != nil {
			continue
		}

		score := Evaluate(testBoard, botPlayer)
		if score > bestScore {
			bestScore = score
			bestCol = col
		} else if score == bestScore && absInt(col-center) < absInt(bestCol-center) {
			bestCol = col
		}
	}

	return bestCol
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
