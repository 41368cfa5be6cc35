package match

import (
	"github.com/rs/zerolog/log"

	"github.com/ZuraLog/connect4/internal/domain"
	"github.com/ZuraLog/connect4/internal/service/bot"
)

// Match joins one human and the bot over a single domain.Game. The human
// always plays Player1 and moves first; the bot plays Player2. All
// rejections come back as sentinel errors and leave the game untouched,
// so a host can probe freely.
type Match struct {
	game       *domain.Game
	difficulty string
	botName    string
}

func NewMatch(difficulty string) *Match {
	return &Match{
		game:       domain.NewGame(),
		difficulty: difficulty,
		botName:    domain.GetBotName(difficulty),
	}
}

// PlayerMove applies the human's move and returns the row it landed on.
func (m *Match) PlayerMove(column int) (int, error) {
	row, err := m.game.MakeMove(domain.Player1, column)
	if err != nil {
		log.Debug().Int("column", column).Err(err).Msg("player move rejected")
		return -1, err
	}

	log.Info().
		Int("column", column).
		Int("row", row).
		Int("move", m.game.MoveCount).
		Msg("player move applied")

	m.logOutcome()
	return row, nil
}

// BotMove asks the engine for a column and applies it, returning the
// chosen column and landing row. The engine is synchronous and CPU
// bound; hosts that need a responsive UI call this from a goroutine of
// their own.
func (m *Match) BotMove() (int, int, error) {
	if m.game.IsFinished() {
		return -1, -1, domain.ErrGameFinished
	}
	if m.game.CurrentPlayer != domain.Player2 {
		return -1, -1, domain.ErrNotYourTurn
	}

	column := bot.CalculateBestMove(m.game.Board, domain.Player2, m.difficulty)
	row, err := m.game.MakeMove(domain.Player2, column)
	if err != nil {
		return -1, -1, err
	}

	log.Info().
		Str("bot", m.botName).
		Str("difficulty", m.difficulty).
		Int("column", column).
		Int("row", row).
		Int("move", m.game.MoveCount).
		Msg("bot move applied")

	m.logOutcome()
	return column, row, nil
}

func (m *Match) logOutcome() {
	switch m.game.Status {
	case domain.StatusPlayer1Won:
		log.Info().Int("moves", m.game.MoveCount).Msg("player wins")
	case domain.StatusPlayer2Won:
		log.Info().Str("bot", m.botName).Int("moves", m.game.MoveCount).Msg("bot wins")
	case domain.StatusDraw:
		log.Info().Int("moves", m.game.MoveCount).Msg("game drawn")
	}
}

func (m *Match) Reset() {
	log.Info().Str("difficulty", m.difficulty).Msg("match reset")
	m.game.Reset()
}

// Board returns a snapshot copy, so the caller can render or probe it
// without aliasing the live board.
func (m *Match) Board() [][]domain.PlayerID {
	return domain.CopyBoard(m.game.Board)
}

func (m *Match) Status() domain.GameStatus {
	return m.game.Status
}

func (m *Match) Winner() domain.PlayerID {
	return m.game.Winner
}

// WinLine reports the winning run for highlighting, if the game has one.
func (m *Match) WinLine() (domain.WinLine, bool) {
	if m.game.WinLine == nil {
		return nil, false
	}
	return m.game.WinLine, true
}

func (m *Match) IsFinished() bool {
	return m.game.IsFinished()
}

func (m *Match) IsBotTurn() bool {
	return !m.game.IsFinished() && m.game.CurrentPlayer == domain.Player2
}

func (m *Match) MoveCount() int {
	return m.game.MoveCount
}

func (m *Match) BotName() string {
	return m.botName
}
