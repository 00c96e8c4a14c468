package dispatch

import (
	"fmt"

	"github.com/zeusync/tickcore/internal/core/models"
	"github.com/zeusync/tickcore/internal/core/observability/log"
	"github.com/zeusync/tickcore/internal/core/projection"
	"github.com/zeusync/tickcore/internal/core/registry"
	"github.com/zeusync/tickcore/internal/core/scoped"
)

// Traversal selects how a phase walks its entities.
type Traversal string

const (
	// TraversalFlat updates entities in a plain loop over the registry.
	TraversalFlat Traversal = "flat"
	// TraversalScoped runs each phase as a scoped tree: the world at the root,
	// one leaf per entity sending its successor and effect up as Parent messages.
	TraversalScoped Traversal = "scoped"
)

type Option func(*Dispatcher)

// WithTraversal picks the phase traversal. Both produce identical results.
func WithTraversal(t Traversal) Option {
	return func(d *Dispatcher) {
		d.traversal = t
	}
}

// Result is the outcome of one tick.
type Result struct {
	Registry       registry.Registry
	Control        models.Control
	AgentEffects   []models.Effect
	PatientEffects []models.Effect
	Renderables    []projection.Renderable
	Playables      []projection.Playable
}

// Dispatcher advances a registry one tick at a time. It holds no simulation
// state; Tick is a pure function of its arguments.
type Dispatcher struct {
	logger    log.Log
	traversal Traversal
}

func New(logger log.Log, opts ...Option) *Dispatcher {
	if logger == nil {
		logger = log.NewNop()
	}
	d := &Dispatcher{traversal: TraversalFlat}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = logger.With(log.String("component", "dispatcher"), log.String("traversal", string(d.traversal)))
	return d
}

func (d *Dispatcher) Traversal() Traversal { return d.traversal }

// Tick runs the two phases in order:
//
//  1. every Agent, in registry order, gets the parsed control; successors
//     replace their predecessors and the effects are folded left to right;
//  2. every Patient of the resulting registry updates the same way.
//
// Entities killed by phase 1 effects do not take part in phase 2, entities
// spawned by them do. Projections are taken from the final registry.
func (d *Dispatcher) Tick(r registry.Registry, in TickInput) Result {
	ctl := ParseInput(in.Events)

	agentPhase, patientPhase := runPhase[models.Agent], runPhase[models.Patient]
	if d.traversal == TraversalScoped {
		agentPhase, patientPhase = runScoped[models.Agent], runScoped[models.Patient]
	}

	afterAgents, agentEffects := agentPhase(registry.Agents(r), r, func(a models.Agent) (models.Entity, models.Effect) {
		return a.UpdateAgent(ctl)
	})
	afterAgents = registry.ApplyAll(afterAgents, agentEffects)

	afterPatients, patientEffects := patientPhase(registry.Patients(afterAgents), afterAgents, func(p models.Patient) (models.Entity, models.Effect) {
		return p.UpdatePatient()
	})
	afterPatients = registry.ApplyAll(afterPatients, patientEffects)

	renderables, playables := projection.Extract(afterPatients)

	d.logger.Debug("tick",
		log.Int("dx", ctl.DX),
		log.String("face", string(ctl.Face)),
		log.Int("agent_effects", len(agentEffects)),
		log.Int("patient_effects", len(patientEffects)),
		log.Int("entities", afterPatients.Len()),
	)

	return Result{
		Registry:       afterPatients,
		Control:        ctl,
		AgentEffects:   agentEffects,
		PatientEffects: patientEffects,
		Renderables:    renderables,
		Playables:      playables,
	}
}

// runPhase updates each view in order against r, replacing each entity with
// its successor, and collects the non-nil effects in the same order.
func runPhase[C models.Entity](views []registry.View[C], r registry.Registry, update func(C) (models.Entity, models.Effect)) (registry.Registry, []models.Effect) {
	effects := make([]models.Effect, 0, len(views))
	for _, v := range views {
		next, effect := update(v.Value)
		mustBeSuccessor(v, next)
		r = r.Replace(next)
		if effect != nil {
			effects = append(effects, effect)
		}
	}
	return r, effects
}

// runScoped is runPhase expressed as one step of a scoped tree. Parent
// messages reach the root only after every leaf has updated, so all
// successors are in place before the first effect is applied.
func runScoped[C models.Entity](views []registry.View[C], r registry.Registry, update func(C) (models.Entity, models.Effect)) (registry.Registry, []models.Effect) {
	leaves := make([]scoped.Node[scoped.World], len(views))
	for i, v := range views {
		leaves[i] = scoped.Leaf(scoped.World{Emit: func() []scoped.Message[scoped.World] {
			next, effect := update(v.Value)
			mustBeSuccessor(v, next)
			msgs := []scoped.Message[scoped.World]{scoped.Successor(scoped.Parent, next)}
			if effect != nil {
				msgs = append(msgs, scoped.Defer(scoped.Parent, effect))
			}
			return msgs
		}})
	}

	root, _ := scoped.DepthFirst[scoped.World]{}.Step(scoped.Branch(scoped.World{Registry: r}, leaves...))
	effects := root.Payload.Pending
	if effects == nil {
		effects = []models.Effect{}
	}
	return root.Payload.Registry, effects
}

func mustBeSuccessor[C models.Entity](v registry.View[C], next models.Entity) {
	if next == nil || next.ID() != v.ID {
		panic(fmt.Sprintf("dispatch: %s update of %s returned a different entity", v.Value.Kind(), v.ID))
	}
}
