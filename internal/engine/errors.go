package engine

import "errors"

var (
	ErrEngineAlreadyRunning = errors.New("engine is already running")
	ErrInvalidConfig        = errors.New("invalid engine configuration")
)
