package models

import "fmt"

// Input is one discrete event captured between two ticks.
type Input uint8

const (
	InputMoveLeft Input = iota + 1
	InputMoveRight
	InputFaceThinking
	InputFaceAngry
	InputFaceFlustered
)

// Face symbols an Actor can adopt.
const (
	FaceNeutral   Symbol = "😐"
	FaceThinking  Symbol = "🤔"
	FaceAngry     Symbol = "😡"
	FaceFlustered Symbol = "😳"
)

var inputNames = map[Input]string{
	InputMoveLeft:      "left",
	InputMoveRight:     "right",
	InputFaceThinking:  "thinking",
	InputFaceAngry:     "angry",
	InputFaceFlustered: "flustered",
}

func (i Input) String() string {
	if name, ok := inputNames[i]; ok {
		return name
	}
	return fmt.Sprintf("input(%d)", uint8(i))
}

// ParseInput maps an event name ("left", "right", "thinking", "angry",
// "flustered") onto an Input.
func ParseInput(s string) (Input, error) {
	for in, name := range inputNames {
		if name == s {
			return in, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInput, s)
}

// Delta is the horizontal movement an event asks for.
func (i Input) Delta() int {
	switch i {
	case InputMoveLeft:
		return -1
	case InputMoveRight:
		return +1
	default:
		return 0
	}
}

// Face returns the symbol a face-change event selects.
func (i Input) Face() (Symbol, bool) {
	switch i {
	case InputFaceThinking:
		return FaceThinking, true
	case InputFaceAngry:
		return FaceAngry, true
	case InputFaceFlustered:
		return FaceFlustered, true
	default:
		return "", false
	}
}
