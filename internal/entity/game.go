package entity

const (
	WinnerNone     = ""
	WinnerPlayer   = "player"
	WinnerOpponent = "opponent"
	WinnerDraw     = "draw"
)

const (
	StatusAwaitingMove = "awaiting_move"
	StatusGameOver     = "game_over"
)

// Turn - one accepted round: the player's move and the opponent's reply.
type Turn struct {
	PlayerMove   int `json:"player_move"`
	OpponentMove int `json:"opponent_move"`
}

// Game - the state of one browser session's game.
type Game struct {
	ID      string `json:"id"`
	Board   Board  `json:"board"`
	History []Turn `json:"history"`
	Winner  string `json:"winner"`
}

func NewGame(id string) *Game {
	game := &Game{ID: id}
	game.Reset()

	return game
}

// Reset - puts the game back to an unplayed board with no history and no winner.
func (that *Game) Reset() {
	that.Board = NewBoard()
	that.History = []Turn{}
	that.Winner = WinnerNone
}

func (that *Game) Status() string {
	if that.IsFinished() {
		return StatusGameOver
	}

	return StatusAwaitingMove
}

func (that *Game) IsFinished() bool {
	return that.Winner != WinnerNone
}

// WinnerMessage - the terminal message shown to the player, empty while the game goes on.
func (that *Game) WinnerMessage() string {
	switch that.Winner {
	case WinnerPlayer:
		return "CONGRATULATIONS, YOU WON!!"
	case WinnerOpponent:
		return "OH NO, YOU LOST!!"
	case WinnerDraw:
		return "A DRAW!!"
	default:
		return ""
	}
}
