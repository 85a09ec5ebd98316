package tableau

import (
	"github.com/righier/hornitl/core"
	"github.com/righier/hornitl/interval"
)

// Saturate runs one saturation attempt for a fixed (d, x, y): it builds the
// hi/lo interval pair, drains every cell's worklist under the per-cell
// rewrite rules, alternates with Extend, and returns the resulting Model.
// A cell (x,y) outside the valid range 0<=x<y<d is rejected immediately.
func Saturate(d, x, y int, state State) core.Model {
	if !interval.Valid(x, y, d) {
		return core.Unsatisfiable()
	}

	hi := NewIntervalWorklist(d)
	lo := NewIntervalSets(d)

	for z := 0; z < d; z++ {
		for t := z + 1; t < d; t++ {
			lo.Get(z, t).Add(core.TRUTH)
			refs := make([]core.Formula, len(state.Input.Rules))
			for i := range state.Input.Rules {
				refs[i] = core.ClauseRef(i)
			}
			hi.Set(z, t, refs)
		}
	}
	hi.Push(x, y, state.Input.Facts...)

	for {
		changed := false
		for z := 0; z < d; z++ {
			for t := z + 1; t < d; t++ {
				c, ok := drainCell(z, t, d, hi, lo, state.Input.Rules)
				if !ok {
					return core.Unsatisfiable()
				}
				if c {
					changed = true
				}
			}
		}

		switch Extend(d, hi, lo, state) {
		case ExtendContradiction:
			return core.Unsatisfiable()
		case ExtendChanged:
			changed = true
		}

		if !changed {
			break
		}
	}

	return core.Model{
		Lo:        lo.AsMap(),
		Dimension: d,
		Start:     core.Start{X: x, Y: y},
		Satisfied: true,
	}
}
