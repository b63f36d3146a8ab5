package rest

import (
	"embed"
	"html/template"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

var gameTemplate = template.Must(template.ParseFS(templatesFS, "templates/game.html"))

// gameView - what the game page shows. ErrorMsg and WinningMsg are never both set.
type gameView struct {
	Board      []string
	History    []entity.Turn
	ErrorMsg   string
	WinningMsg string
	Status     string
}

func newGameView(game *entity.Game, errorMsg string) gameView {
	view := gameView{
		Board:    game.Board.Rows(),
		History:  game.History,
		ErrorMsg: errorMsg,
		Status:   game.Status(),
	}

	if errorMsg == "" {
		view.WinningMsg = game.WinnerMessage()
	}

	return view
}
