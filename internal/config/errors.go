package config

import "errors"

var (
	ErrInvalidConfig      = errors.New("invalid config")
	ErrUnsupportedFormat  = errors.New("unsupported config format")
	ErrUnknownInputSource = errors.New("unknown input provider")
	ErrEntityOutsideTrack = errors.New("entity position outside track")
)
