package bot

import (
	"math"
	"math/rand"

	"github.com/ZuraLog/connect4/internal/domain"
)

const (
	// SearchDepth is the fixed lookahead in plies. Test fixtures depend
	// on the exact depth, so tune it here rather than at call sites.
	SearchDepth = 4

	// WinScore dominates any heuristic sum, so a forced win or loss
	// always outranks positional differences.
	WinScore = 100000
)

// minimax runs depth-limited minimax with alpha-beta pruning and returns
// the best column together with its score. The bot maximizes, the
// opponent minimizes, and evaluation is always from the bot's
// perspective. A terminal position returns column -1.
func minimax(board [][]domain.PlayerID, depth, alpha, beta int, maximizing bool, botPlayer, opponent domain.PlayerID) (int, int) {
	// won and lost positions end the search no matter the depth left
	if _, won := domain.FindWinningLine(board, botPlayer); won {
		return -1, WinScore
	}
	if _, won := domain.FindWinningLine(board, opponent); won {
		return -1, -WinScore
	}

	validColumns := domain.GetValidMoves(board)
	if depth == 0 || len(validColumns) == 0 {
		return -1, Evaluate(board, botPlayer)
	}

	// seed with a random valid column so heuristic ties don't always
	// resolve to the leftmost move
	bestCol := validColumns[rand.Intn(len(validColumns))]

	if maximizing {
		bestScore := math.MinInt32
		for _, col := range validColumns {
			testBoard, _, err := domain.SimulateMove(board, col, botPlayer)
			if err != nil {
				continue
			}

			_, score := minimax(testBoard, depth-1, alpha, beta, false, botPlayer, opponent)
			if score > bestScore {
				bestScore = score
				bestCol = col
			}

			alpha = max(alpha, bestScore)
			if alpha >= beta {
				break // beta cutoff
			}
		}
		return bestCol, bestScore
	}

	bestScore := math.MaxInt32
	for _, col := range validColumns {
		testBoard, _, err := domain.SimulateMove(board, col, opponent)
		if err != nil {
			continue
		}

		_, score := minimax(testBoard, depth-1, alpha, beta, true, botPlayer, opponent)
		if score < bestScore {
			bestScore = score
			bestCol = col
		}

		beta = min(beta, bestScore)
		if alpha >= beta {
			break // alpha cutoff
		}
	}
	return bestCol, bestScore
}

// CalculateBestMoveMinimax implements hard difficulty: a full-depth
// alpha-beta search. Calling it on a full board is a state machine bug
// upstream, so it panics instead of guessing.
func CalculateBestMoveMinimax(board [][]domain.PlayerID, botPlayer domain.PlayerID) int {
	validColumns := domain.GetValidMoves(board)
	if len(validColumns) == 0 {
		panic("bot: no valid moves, move requested on a full board")
	}

	col, _ := minimax(board, SearchDepth, math.MinInt32, math.MaxInt32, true, botPlayer, domain.Opponent(botPlayer))
	if col < 0 {
		return validColumns[0]
	}
	return col
}
