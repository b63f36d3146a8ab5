package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("cannot move there")
	ErrUnrecognisedMove = errors.New("unrecognised move, looking for an integer from the spaces available")
	ErrGameFinished     = errors.New("game is already finished")
)
