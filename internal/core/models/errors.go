package models

import "errors"

var (
	ErrUnknownKind   = errors.New("unknown entity kind")
	ErrUnknownFacing = errors.New("unknown facing")
	ErrUnknownInput  = errors.New("unknown input event")
)
