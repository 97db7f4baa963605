/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package feud

import "errors"

var (
	// ErrDataLoad means round data could not be read or parsed. Game start is blocked.
	ErrDataLoad = errors.New("round data failed to load")

	// ErrNotLoaded means round data has not arrived yet. Game start is deferred.
	ErrNotLoaded = errors.New("round data not loaded yet")

	ErrOutOfRange      = errors.New("answer index out of range")
	ErrAlreadyRevealed = errors.New("answer already revealed")
	ErrSessionOver     = errors.New("main game is over")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidTeam     = errors.New("team must be 1 or 2")
	ErrInvalidState    = errors.New("not allowed in the current phase")
	ErrInvalidDuration = errors.New("timer duration must be positive")
)
