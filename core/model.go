package core

import "github.com/righier/hornitl/interval"

// FormulaSet is the "proved" (lo) payload of a single interval cell: a
// structural set of Formulas. Insertion is idempotent; the bool result of
// Add mirrors Go's map-based set idiom and drives the outer fixpoint's
// "was this new?" signal.
type FormulaSet map[Formula]struct{}

// NewFormulaSet creates an empty set, optionally pre-sized.
func NewFormulaSet(capacity int) FormulaSet {
	return make(FormulaSet, capacity)
}

// Add inserts f and reports whether it was not already present.
func (s FormulaSet) Add(f Formula) bool {
	if _, ok := s[f]; ok {
		return false
	}
	s[f] = struct{}{}
	return true
}

// Has reports whether f is a member of s.
func (s FormulaSet) Has(f Formula) bool {
	_, ok := s[f]
	return ok
}

// Slice returns the set's members in unspecified order.
func (s FormulaSet) Slice() []Formula {
	out := make([]Formula, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	return out
}

// Model is the outcome of a saturation attempt: either a satisfied model
// carrying the closed "lo" map and the starting interval it was built from,
// or the unsatisfied sentinel (Satisfied=false, Lo=nil).
type Model struct {
	Lo        *interval.Map[FormulaSet] // nil when unsatisfied
	Dimension int
	Start     Start
	Satisfied bool
}

// Unsatisfiable returns the sentinel "no model found" result.
func Unsatisfiable() Model {
	return Model{Satisfied: false}
}

// At returns the proved formula set at cell (z, t) of a satisfied model.
func (m Model) At(z, t int) FormulaSet {
	return m.Lo.Get(z, t)
}
