package input

import (
	"fmt"

	"github.com/zeusync/tickcore/internal/config"
	"github.com/zeusync/tickcore/internal/core/models"
	"github.com/zeusync/tickcore/internal/core/observability/log"
)

// Provider supplies the raw events observed during a frame. Frames are
// numbered from 1.
type Provider interface {
	Poll(frame uint64) ([]models.Input, error)
	Close() error
}

// New builds the provider selected by cfg.Provider.
func New(cfg config.InputConfig, logger log.Log) (Provider, error) {
	if logger == nil {
		logger = log.NewNop()
	}
	logger = logger.With(log.String("component", "input"), log.String("provider", cfg.Provider))

	switch cfg.Provider {
	case config.ProviderEmpty:
		return Empty{}, nil
	case config.ProviderRandom:
		return NewRandom(cfg.Seed), nil
	case config.ProviderScript:
		return ParseScript(cfg.Script)
	case config.ProviderLua:
		src, err := cfg.LuaScript()
		if err != nil {
			return nil, err
		}
		return NewLua(src, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// Empty never reports any event.
type Empty struct{}

func (Empty) Poll(uint64) ([]models.Input, error) { return nil, nil }
func (Empty) Close() error                        { return nil }

// Names renders events the way they appear in the frame footer.
func Names(events []models.Input) []string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.String()
	}
	return names
}

func parseAll(names []string) ([]models.Input, error) {
	events := make([]models.Input, 0, len(names))
	for _, name := range names {
		in, err := models.ParseInput(name)
		if err != nil {
			return nil, err
		}
		events = append(events, in)
	}
	return events, nil
}
