package injector

import (
	"os"

	"github.com/google/wire"

	"github.com/zeusync/tickcore/internal/audio"
	"github.com/zeusync/tickcore/internal/config"
	"github.com/zeusync/tickcore/internal/core/dispatch"
	"github.com/zeusync/tickcore/internal/core/events/bus"
	"github.com/zeusync/tickcore/internal/core/observability/log"
	"github.com/zeusync/tickcore/internal/core/registry"
	"github.com/zeusync/tickcore/internal/engine"
	"github.com/zeusync/tickcore/internal/input"
	"github.com/zeusync/tickcore/internal/render"
	"github.com/zeusync/tickcore/internal/server"
)

// App is everything cmd/tickcore needs to run a simulation.
type App struct {
	Config    *config.Config
	Logger    *log.Logger
	World     registry.Registry
	Input     input.Provider
	Engine    *engine.Engine
	Spectator *server.Spectator
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideWorld,
	ProvideInput,
	ProvideConsole,
	ProvideAudio,
	ProvideDispatcher,
	ProvideEngineConfig,
	ProvideSpectatorConfig,
	bus.New,
	engine.New,
	server.NewSpectator,
	wire.Bind(new(log.Log), new(*log.Logger)),
	wire.Bind(new(render.Renderer), new(*render.Console)),
	wire.Bind(new(audio.Sink), new(*audio.Nop)),
	wire.Struct(new(App), "*"),
)

func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.New(level), nil
}

func ProvideWorld(cfg *config.Config) (registry.Registry, error) {
	return cfg.World.Registry()
}

func ProvideInput(cfg *config.Config, logger log.Log) (input.Provider, func(), error) {
	p, err := input.New(cfg.Input, logger)
	if err != nil {
		return nil, nil, err
	}
	return p, func() { _ = p.Close() }, nil
}

func ProvideConsole() *render.Console {
	return render.NewConsole(os.Stdout)
}

func ProvideAudio(logger log.Log) *audio.Nop {
	return audio.NewNop(logger)
}

func ProvideDispatcher(cfg *config.Config, logger log.Log) *dispatch.Dispatcher {
	return dispatch.New(logger, dispatch.WithTraversal(dispatch.Traversal(cfg.Simulation.Traversal)))
}

func ProvideEngineConfig(cfg *config.Config) engine.Config {
	return engine.Config{
		TickInterval: cfg.Simulation.TickInterval,
		Ticks:        cfg.Simulation.Ticks,
	}
}

func ProvideSpectatorConfig(cfg *config.Config) server.Config {
	c := server.DefaultConfig()
	c.Addr = cfg.Spectator.Addr
	return c
}
