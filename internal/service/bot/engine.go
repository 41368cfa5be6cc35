package bot

import (
	"github.com/ZuraLog/connect4/internal/domain"
)

// CalculateBestMove selects the best move based on difficulty
func CalculateBestMove(board [][]domain.PlayerID, botPlayer domain.PlayerID, difficulty string) int {
	switch difficulty {
	case "easy":
		return CalculateBestMoveEasy(board, botPlayer)
	case "medium":
		return calculateMediumMove(board, botPlayer)
	case "hard":
		return CalculateBestMoveMinimax(board, botPlayer)
	default:
		return CalculateBestMoveMinimax(board, botPlayer)
	}
}
