package registry

import (
	"github.com/zeusync/tickcore/internal/core/models"
	"github.com/zeusync/tickcore/pkg/sequence"
)

// View is an entity seen through one of its capabilities.
type View[C any] struct {
	ID    models.ID
	Value C
}

// Filter returns, in registry order, every entity that implements capability
// C. Entities without it are skipped.
func Filter[C any](r Registry) []View[C] {
	return sequence.FilterMap(r.Iter(), func(e models.Entity) (View[C], bool) {
		c, ok := e.(C)
		if !ok {
			return View[C]{}, false
		}
		return View[C]{ID: e.ID(), Value: c}, true
	}).Collect()
}

func Agents(r Registry) []View[models.Agent] {
	return Filter[models.Agent](r)
}

func Patients(r Registry) []View[models.Patient] {
	return Filter[models.Patient](r)
}

func Renderables(r Registry) []View[models.ProvidesRenderObject] {
	return Filter[models.ProvidesRenderObject](r)
}
