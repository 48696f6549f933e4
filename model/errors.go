package model

import "github.com/pkg/errors"

var (
	// ErrOutOfRangeCoordinate is returned when x or y falls outside [0, size)
	ErrOutOfRangeCoordinate = errors.New("coordinate out of range")
	// ErrInvalidDimension is returned when a grid is requested with a non-positive size
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrCorruptGrid is returned when a grid no longer holds exactly size*size cells
	ErrCorruptGrid = errors.New("corrupt grid")
	// ErrInvalidSeed is returned when a seed string or pattern name cannot be parsed
	ErrInvalidSeed = errors.New("invalid seed")
)
