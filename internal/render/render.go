package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/zeusync/tickcore/internal/core/projection"
	"github.com/zeusync/tickcore/pkg/generic"
)

// Blank is the cell value before any background is drawn.
const Blank = " "

// Screen is one composed frame: the track row and the text lines under it.
type Screen struct {
	Row   string
	Lines []string
}

func (s Screen) String() string {
	var b strings.Builder
	b.WriteString(s.Row)
	b.WriteByte('\n')
	for _, line := range s.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

var rows = generic.NewPool(
	func() *[]string {
		cells := make([]string, projection.Width)
		return blank(&cells)
	},
	blank,
)

func blank(cells *[]string) *[]string {
	for i := range *cells {
		(*cells)[i] = Blank
	}
	return cells
}

// Compose folds renderables over a blank row in order, so later items
// overwrite earlier ones.
func Compose(renderables []projection.Renderable) Screen {
	row := rows.Get()
	defer rows.Put(row)
	cells := *row

	var lines []string
	for _, r := range renderables {
		switch r := r.(type) {
		case projection.Background:
			for i := range cells {
				cells[i] = string(r.Fill)
			}
		case projection.BackgroundPattern:
			pattern := []rune(r.Pattern)
			if len(pattern) == 0 {
				continue
			}
			for i := range cells {
				cells[i] = string(pattern[i%len(pattern)])
			}
		case projection.Sprite:
			if r.Position < 0 || r.Position >= len(cells) {
				panic(fmt.Sprintf("render: sprite %q at %d outside [0, %d)", r.Symbol, r.Position, len(cells)))
			}
			cells[r.Position] = string(r.Symbol)
		case projection.TextLine:
			lines = append(lines, r.Text)
		default:
			panic(fmt.Sprintf("render: unknown renderable %T", r))
		}
	}

	return Screen{Row: strings.Join(cells, ""), Lines: lines}
}

// Renderer draws a frame somewhere.
type Renderer interface {
	Render(renderables []projection.Renderable) (Screen, error)
}

// Console writes each composed frame to an io.Writer.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Render(renderables []projection.Renderable) (Screen, error) {
	screen := Compose(renderables)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.w, screen.String()); err != nil {
		return screen, fmt.Errorf("write frame: %w", err)
	}
	return screen, nil
}
