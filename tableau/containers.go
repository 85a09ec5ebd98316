package tableau

import (
	"github.com/righier/hornitl/core"
	"github.com/righier/hornitl/interval"
)

// IntervalWorklist is the "hi" container of a saturation attempt: one
// pending-derivation worklist per cell.
type IntervalWorklist struct {
	cells *interval.Map[[]core.Formula]
}

// NewIntervalWorklist allocates an empty worklist of dimension d.
func NewIntervalWorklist(d int) *IntervalWorklist {
	return &IntervalWorklist{cells: interval.New[[]core.Formula](d)}
}

// Get returns the pending formulas at (z,t) without removing them.
func (w *IntervalWorklist) Get(z, t int) []core.Formula {
	return w.cells.Get(z, t)
}

// Set replaces the pending formulas at (z,t).
func (w *IntervalWorklist) Set(z, t int, formulas []core.Formula) {
	w.cells.Set(z, t, formulas)
}

// Push appends formulas onto the worklist at (z,t).
func (w *IntervalWorklist) Push(z, t int, formulas ...core.Formula) {
	w.cells.Set(z, t, append(w.cells.Get(z, t), formulas...))
}

// Take returns the pending formulas at (z,t) and empties the cell, ready
// for draining. This is the "take ownership of the worklist" half of the
// fast-swap-and-pop discipline spec.md calls for; the caller owns the
// returned slice as a LIFO stack.
func (w *IntervalWorklist) Take(z, t int) []core.Formula {
	cur := w.cells.Get(z, t)
	w.cells.Set(z, t, nil)
	return cur
}

// IntervalSets is the "lo" container of a saturation attempt: one proved
// formula set per cell.
type IntervalSets struct {
	cells *interval.Map[core.FormulaSet]
	d     int
}

// NewIntervalSets allocates an IntervalSets of dimension d with an empty,
// freshly-constructed FormulaSet in every cell (interval.New only
// zero-values each cell, which for a map type is nil; every cell needs its
// own live map instance before use).
func NewIntervalSets(d int) *IntervalSets {
	s := &IntervalSets{cells: interval.New[core.FormulaSet](d), d: d}
	for z := 0; z < d; z++ {
		for t := z + 1; t < d; t++ {
			s.cells.Set(z, t, core.NewFormulaSet(8))
		}
	}
	return s
}

// Get returns the live FormulaSet at (z,t); mutating it mutates the
// container, since FormulaSet is itself a map.
func (s *IntervalSets) Get(z, t int) core.FormulaSet {
	return s.cells.Get(z, t)
}

// Size returns the dimension the container was built with.
func (s *IntervalSets) Size() int { return s.d }

// AsMap exposes the underlying generic container for embedding in a
// core.Model.
func (s *IntervalSets) AsMap() *interval.Map[core.FormulaSet] {
	return s.cells
}
