package domain

import "errors"

var (
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrInvalidDimension  = errors.New("invalid grid dimension")
	ErrSimulationStarted = errors.New("simulation already started")
	ErrNoDungeon         = errors.New("no dungeon loaded")
	ErrUnknownEntity     = errors.New("unknown entity kind")
	ErrBadOrientation    = errors.New("unknown dragon orientation")
)
