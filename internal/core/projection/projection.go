package projection

import (
	"fmt"

	"github.com/zeusync/tickcore/internal/core/models"
	"github.com/zeusync/tickcore/internal/core/registry"
	"github.com/zeusync/tickcore/pkg/sequence"
)

// Width is the number of cells a renderer draws.
const Width = models.TrackWidth

// DefaultBackground fills every cell not covered by a sprite.
const DefaultBackground = '.'

// Renderable is something a renderer knows how to draw.
type Renderable interface {
	renderable()
}

// Background fills the whole row with one character.
type Background struct {
	Fill rune
}

// BackgroundPattern fills the row by repeating Pattern.
type BackgroundPattern struct {
	Pattern string
}

// Sprite is a symbol drawn at a cell. Build it with NewSprite.
type Sprite struct {
	Symbol   models.Symbol
	Position int
}

// TextLine is printed below the row.
type TextLine struct {
	Text string
}

func (Background) renderable()        {}
func (BackgroundPattern) renderable() {}
func (Sprite) renderable()            {}
func (TextLine) renderable()          {}

// NewSprite panics when position falls outside [0, Width). Positions come
// from clamped entity state, so an out-of-range sprite is a simulation bug.
func NewSprite(symbol models.Symbol, position int) Sprite {
	if position < 0 || position >= Width {
		panic(fmt.Sprintf("projection: sprite %q at %d outside [0, %d)", symbol, position, Width))
	}
	return Sprite{Symbol: symbol, Position: position}
}

// Playable is a sound for the audio sink. Nothing produces one yet.
type Playable interface {
	playable()
}

// Sound is a placeholder playable.
type Sound struct {
	Name string
}

func (Sound) playable() {}

// Extract derives what the tick looks and sounds like: a background fill
// followed by one sprite per renderable entity in registry order.
func Extract(r registry.Registry) ([]Renderable, []Playable) {
	sprites := sequence.Map(sequence.From(registry.Renderables(r)), func(v registry.View[models.ProvidesRenderObject]) Renderable {
		return NewSprite(v.Value.RenderObject())
	}).Collect()

	renderables := make([]Renderable, 0, len(sprites)+1)
	renderables = append(renderables, Background{Fill: DefaultBackground})
	renderables = append(renderables, sprites...)
	return renderables, []Playable{}
}
