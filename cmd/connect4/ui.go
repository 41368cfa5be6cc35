package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ZuraLog/connect4/internal/config"
	"github.com/ZuraLog/connect4/internal/domain"
	"github.com/ZuraLog/connect4/internal/service/match"
)

// RunUI starts the terminal front end. The engine itself is synchronous;
// the bot turn runs in a goroutine here so the UI keeps redrawing, and
// only the finished move is marshalled back onto the UI thread.
func RunUI(cfg *config.Config) error {
	app := tview.NewApplication()

	difficultyOption := cfg.Difficulty

	var showStartScreen func()
	var startGame func()

	showStartScreen = func() {
		difficulties := []string{"easy", "medium", "hard"}
		initial := 2
		for i, d := range difficulties {
			if d == difficultyOption {
				initial = i
			}
		}

		form := tview.NewForm()
		form.
			AddDropDown("Difficulty", difficulties, initial, func(option string, index int) {
				difficultyOption = option
			}).
			AddButton("Start Game", func() {
				startGame()
			}).
			AddButton("Quit", func() {
				app.Stop()
			})
		form.SetBorder(true).SetTitle("Connect Four").SetTitleAlign(tview.AlignCenter)

		app.SetRoot(form, true).SetFocus(form)
	}

	startGame = func() {
		m := match.NewMatch(difficultyOption)

		botName := m.BotName()
		if cfg.BotName != "" {
			botName = cfg.BotName
		}

		boardTable := tview.NewTable()
		boardTable.SetSelectable(true, true)
		boardTable.SetBorder(true)
		boardTable.SetTitleAlign(tview.AlignLeft)
		boardTable.SetBorderColor(tcell.ColorBlue)
		boardTable.SetBorders(true)

		statusBox := tview.NewTextView()
		statusBox.SetBorder(true)
		statusBox.SetTitle("Match")

		flex := tview.NewFlex().
			AddItem(boardTable, 0, 1, true).
			AddItem(statusBox, 40, 1, false)

		updateBoard := func() {
			board := m.Board()
			line, hasLine := m.WinLine()

			for r := 0; r < domain.Rows; r++ {
				for c := 0; c < domain.Columns; c++ {
					cell := tview.NewTableCell(pieceSymbol(board[r][c]))
					cell.SetAlign(tview.AlignCenter)

					if hasLine {
						for _, coord := range line {
							if coord.Row == r && coord.Col == c {
								cell.SetBackgroundColor(tcell.ColorDarkGreen)
							}
						}
					}

					boardTable.SetCell(r, c, cell)
				}
			}

			switch m.Status() {
			case domain.StatusActive:
				if m.IsBotTurn() {
					boardTable.SetTitle(fmt.Sprintf(" Connect Four - %s's turn ", botName))
				} else {
					boardTable.SetTitle(" Connect Four - your turn ")
				}
			case domain.StatusDraw:
				boardTable.SetTitle(" Connect Four - draw ")
			case domain.StatusPlayer1Won:
				boardTable.SetTitle(" Connect Four - you win! ")
			case domain.StatusPlayer2Won:
				boardTable.SetTitle(fmt.Sprintf(" Connect Four - %s wins ", botName))
			}

			statusBox.SetText(fmt.Sprintf(
				"Opponent: %s (%s)\nMoves played: %d\n\nPick any cell in a column\nto drop your disk there.",
				botName, difficultyOption, m.MoveCount()))
		}

		updateBoard()

		var (
			botThinking  int32
			spinnerIndex int
			spinners     = []string{"|", "/", "-", "\\"}
		)

		var processNextTurn func()

		processNextTurn = func() {
			if m.IsFinished() {
				text := "It's a draw."
				switch m.Status() {
				case domain.StatusPlayer1Won:
					text = "You win!"
				case domain.StatusPlayer2Won:
					text = fmt.Sprintf("%s wins.", botName)
				}

				modal := tview.NewModal().
					SetText(fmt.Sprintf("Game over after %d moves.\n%s", m.MoveCount(), text)).
					AddButtons([]string{"New Game", "Quit"}).
					SetDoneFunc(func(buttonIndex int, buttonLabel string) {
						if buttonLabel == "New Game" {
							showStartScreen()
						} else {
							app.Stop()
						}
					})

				app.SetRoot(modal, false).SetFocus(modal)
				return
			}

			if m.IsBotTurn() {
				atomic.StoreInt32(&botThinking, 1)
				spinnerIndex = 0

				ticker := time.NewTicker(100 * time.Millisecond)
				go func() {
					for range ticker.C {
						if atomic.LoadInt32(&botThinking) == 0 {
							ticker.Stop()
							return
						}
						spinner := spinners[spinnerIndex%len(spinners)]
						spinnerIndex++
						app.QueueUpdateDraw(func() {
							boardTable.SetTitle(fmt.Sprintf(" Connect Four - %s is thinking %s ", botName, spinner))
						})
					}
				}()

				go func() {
					m.BotMove()

					atomic.StoreInt32(&botThinking, 0)

					app.QueueUpdateDraw(func() {
						updateBoard()
						processNextTurn()
					})
				}()
			} else {
				updateBoard()
			}
		}

		boardTable.SetSelectedFunc(func(row, column int) {
			// block input while the bot searches
			if atomic.LoadInt32(&botThinking) == 1 {
				return
			}

			if _, err := m.PlayerMove(column); err != nil {
				return
			}

			updateBoard()
			processNextTurn()
		})

		app.SetRoot(flex, true)
	}

	showStartScreen()

	return app.Run()
}

func pieceSymbol(piece domain.PlayerID) string {
	switch piece {
	case domain.Player1:
		return " 🔴 "
	case domain.Player2:
		return " 🟡 "
	default:
		return "    "
	}
}
