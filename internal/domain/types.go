package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1 // human
	Player2 PlayerID = 2 // bot
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Opponent returns the other playable piece.
func Opponent(p PlayerID) PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Coord addresses a single cell; row 0 is the top of the board.
type Coord struct {
	Row int
	Col int
}

// WinLine holds the four cells of a winning run, in scan order.
// It exists for highlighting, not for rules logic.
type WinLine []Coord

// to represent the game status
type GameStatus string

const (
	StatusActive     GameStatus = "active"
	StatusPlayer1Won GameStatus = "player1_won"
	StatusPlayer2Won GameStatus = "player2_won"
	StatusDraw       GameStatus = "draw"
)

var BotNames = map[string]string{
	"easy":   "Alice",
	"medium": "Bob",
	"hard":   "Charles",
}

func GetBotName(difficulty string) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrColumnFull   Error = "column is full"
	ErrNotYourTurn  Error = "not your turn"
	ErrGameFinished Error = "game is finished"
)
