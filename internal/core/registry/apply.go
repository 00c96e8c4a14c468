package registry

import (
	"fmt"

	"github.com/zeusync/tickcore/internal/core/models"
	"github.com/zeusync/tickcore/pkg/sequence"
)

// Apply evaluates effect against r. Conditionals see r exactly as it is at
// this point, including anything earlier effects in the same fold did.
func Apply(r Registry, effect models.Effect) Registry {
	switch e := effect.(type) {
	case nil:
		return r
	case models.Spawn:
		return r.Spawn(e.Entity)
	case models.Kill:
		return r.Kill(e.Target)
	case models.Conditional:
		if e.Decide == nil {
			return r
		}
		return Apply(r, e.Decide(r))
	case models.Sequence:
		return ApplyAll(r, e)
	default:
		panic(fmt.Sprintf("registry: unhandled effect %T", effect))
	}
}

// ApplyAll folds effects over r left to right: ApplyAll(r, [e1, e2]) is
// Apply(Apply(r, e1), e2).
func ApplyAll(r Registry, effects []models.Effect) Registry {
	return sequence.Fold(sequence.From(effects), r, Apply)
}
