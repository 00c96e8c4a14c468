package input

import "errors"

var (
	ErrUnknownProvider = errors.New("unknown input provider")
	ErrMissingFunction = errors.New("lua script does not define input(frame)")
	ErrBadLuaResult    = errors.New("lua input(frame) must return a table of strings")
)
