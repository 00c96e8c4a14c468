package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/tickcore/internal/config"
	"github.com/zeusync/tickcore/internal/core/models"
)

func TestEmpty(t *testing.T) {
	events, err := Empty{}.Poll(1)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRandomIsReproducible(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	for frame := uint64(1); frame <= 200; frame++ {
		ea, err := a.Poll(frame)
		require.NoError(t, err)
		eb, err := b.Poll(frame)
		require.NoError(t, err)
		require.Equal(t, ea, eb, "frame %d", frame)
	}
}

func TestRandomEmitsOnlyKnownShapes(t *testing.T) {
	r := NewRandom(3)
	sawLeft, sawRight, sawNothing := false, false, false

	for frame := uint64(1); frame <= 500; frame++ {
		events, err := r.Poll(frame)
		require.NoError(t, err)

		arrows := 0
		for _, e := range events {
			switch e {
			case models.InputMoveLeft:
				sawLeft = true
				arrows++
			case models.InputMoveRight:
				sawRight = true
				arrows++
			}
		}
		if arrows == 0 {
			sawNothing = true
		}
		assert.Contains(t, []int{0, 1, models.FireThreshold}, arrows)
		assert.LessOrEqual(t, len(events), models.FireThreshold+1)
	}

	assert.True(t, sawLeft)
	assert.True(t, sawRight)
	assert.True(t, sawNothing)
}

func TestScript(t *testing.T) {
	s, err := ParseScript([][]string{{"left", "left"}, {}, {"right", "thinking"}})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	events, _ := s.Poll(1)
	assert.Equal(t, []models.Input{models.InputMoveLeft, models.InputMoveLeft}, events)
	events, _ = s.Poll(2)
	assert.Empty(t, events)
	events, _ = s.Poll(3)
	assert.Equal(t, []models.Input{models.InputMoveRight, models.InputFaceThinking}, events)
	events, _ = s.Poll(4)
	assert.Nil(t, events)
	events, _ = s.Poll(0)
	assert.Nil(t, events)
}

func TestScriptPollReturnsCopy(t *testing.T) {
	s := NewScript([]models.Input{models.InputMoveLeft})
	events, _ := s.Poll(1)
	events[0] = models.InputMoveRight

	again, _ := s.Poll(1)
	assert.Equal(t, []models.Input{models.InputMoveLeft}, again)
}

func TestParseScriptRejectsUnknownEvent(t *testing.T) {
	_, err := ParseScript([][]string{{"left"}, {"jump"}})
	assert.ErrorIs(t, err, models.ErrUnknownInput)
}

func TestLua(t *testing.T) {
	src := `
presses = 0
function input(frame)
  presses = presses + 1
  if frame % 2 == 0 then
    return {"right", "right", "right"}
  end
  if frame == 3 then
    return nil
  end
  return {"left", "angry"}
end
`
	l, err := NewLua(src, nil)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	events, err := l.Poll(1)
	require.NoError(t, err)
	assert.Equal(t, []models.Input{models.InputMoveLeft, models.InputFaceAngry}, events)

	events, err = l.Poll(2)
	require.NoError(t, err)
	assert.Equal(t, []models.Input{models.InputMoveRight, models.InputMoveRight, models.InputMoveRight}, events)

	events, err = l.Poll(3)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestLuaErrors(t *testing.T) {
	_, err := NewLua("this is not lua", nil)
	assert.Error(t, err)

	_, err = NewLua("x = 1", nil)
	assert.ErrorIs(t, err, ErrMissingFunction)

	l, err := NewLua(`function input(frame) return 5 end`, nil)
	require.NoError(t, err)
	_, err = l.Poll(1)
	assert.ErrorIs(t, err, ErrBadLuaResult)
	require.NoError(t, l.Close())

	l, err = NewLua(`function input(frame) return {"dance"} end`, nil)
	require.NoError(t, err)
	_, err = l.Poll(1)
	assert.ErrorIs(t, err, models.ErrUnknownInput)
	require.NoError(t, l.Close())

	l, err = NewLua(`function input(frame) error("boom") end`, nil)
	require.NoError(t, err)
	_, err = l.Poll(1)
	assert.Error(t, err)
	require.NoError(t, l.Close())
}

func TestNewSelectsProvider(t *testing.T) {
	p, err := New(config.InputConfig{Provider: config.ProviderEmpty}, nil)
	require.NoError(t, err)
	assert.IsType(t, Empty{}, p)

	p, err = New(config.InputConfig{Provider: config.ProviderRandom, Seed: 1}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Random{}, p)

	p, err = New(config.InputConfig{Provider: config.ProviderScript, Script: [][]string{{"left"}}}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Script{}, p)

	p, err = New(config.InputConfig{Provider: config.ProviderLua, LuaSource: "function input(f) return {} end"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Lua{}, p)
	require.NoError(t, p.Close())

	_, err = New(config.InputConfig{Provider: "gamepad"}, nil)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"left", "flustered"}, Names([]models.Input{models.InputMoveLeft, models.InputFaceFlustered}))
}
