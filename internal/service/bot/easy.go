package bot

import (
	"math/rand"

	"github.com/ZuraLog/connect4/internal/domain"
)

// CalculateBestMoveEasy takes an immediate win when one exists, blocks an
// immediate loss, and otherwise plays a random column.
func CalculateBestMoveEasy(board [][]domain.PlayerID, botPlayer domain.PlayerID) int {
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

	return validColumns[rand.Intn(len(validColumns))]
}
