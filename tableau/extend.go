package tableau

import "github.com/righier/hornitl/core"

// ExtendResult is the three-valued outcome of a call to Extend.
type ExtendResult int

const (
	// ExtendUnchanged means Extend derived nothing new.
	ExtendUnchanged ExtendResult = iota
	// ExtendChanged means Extend derived at least one new fact.
	ExtendChanged
	// ExtendContradiction means Extend derived Letter(FALSEHOOD) inside a
	// modal self-completion step; the whole attempt must abort.
	ExtendContradiction
)

// Extend enforces the case-specific temporal closure rules described by
// spec.md §4.5. It selects a working range [min, max) over left endpoints
// and executes up to five sub-steps (A)-(E) depending on case.
func Extend(d int, hi *IntervalWorklist, lo *IntervalSets, state State) ExtendResult {
	changed := false

	var min, max int
	switch state.Case {
	case core.FINITE:
		min, max = 0, d
		// sub-steps (A)-(D) are skipped for FINITE; only (E) runs below.
	case core.NATURAL:
		min, max = 0, d-2
		if r := rightBoundaryDuplication(min, max, hi, lo); r {
			changed = true
		}
		res := rightBoundarySelfCompletion(max, lo)
		if res == ExtendContradiction {
			return ExtendContradiction
		}
		if res == ExtendChanged {
			changed = true
		}
	case core.DISCRETE:
		min, max = 0, d-2
		if r := rightBoundaryDuplication(min, max, hi, lo); r {
			changed = true
		}
		res := rightBoundarySelfCompletion(max, lo)
		if res == ExtendContradiction {
			return ExtendContradiction
		}
		if res == ExtendChanged {
			changed = true
		}

		min, max = 1, d-1
		if r := leftBoundaryDuplication(min, max, hi, lo); r {
			changed = true
		}
		res = leftBoundarySelfCompletion(min, lo)
		if res == ExtendContradiction {
			return ExtendContradiction
		}
		if res == ExtendChanged {
			changed = true
		}
	default:
		return ExtendUnchanged
	}

	if globalModalIntroduction(d, min, max, hi, lo, state) {
		changed = true
	}

	if changed {
		return ExtendChanged
	}
	return ExtendUnchanged
}

// rightBoundaryDuplication is sub-step (A): for every z in [min,max), copy
// every non-ClauseRef formula from hi[z,max]/lo[z,max] into
// hi[z,max+1]/lo[z,max+1].
func rightBoundaryDuplication(min, max int, hi *IntervalWorklist, lo *IntervalSets) bool {
	changed := false
	for z := min; z < max; z++ {
		dst, pushed := copyNonClauseFormulas(hi.Get(z, max+1), hi.Get(z, max))
		if pushed > 0 {
			hi.Set(z, max+1, dst)
			changed = true
		}
		if mergeNonClauseFormulas(lo.Get(z, max+1), lo.Get(z, max)) {
			changed = true
		}
	}
	return changed
}

// leftBoundaryDuplication is sub-step (C) (DISCRETE only): for every z in
// (min,max], copy every non-ClauseRef formula from hi[1,z]/lo[1,z] into
// hi[0,z]/lo[0,z].
func leftBoundaryDuplication(min, max int, hi *IntervalWorklist, lo *IntervalSets) bool {
	changed := false
	for z := min + 1; z <= max; z++ {
		dst, pushed := copyNonClauseFormulas(hi.Get(0, z), hi.Get(1, z))
		if pushed > 0 {
			hi.Set(0, z, dst)
			changed = true
		}
		if mergeNonClauseFormulas(lo.Get(0, z), lo.Get(1, z)) {
			changed = true
		}
	}
	return changed
}

// rightBoundarySelfCompletion is sub-step (B): the frontier cell
// lo[max,max+1] is made modally self-consistent — every letter gets a
// BoxA, every BoxA/BoxP yields its inner letter.
func rightBoundarySelfCompletion(max int, lo *IntervalSets) ExtendResult {
	last := lo.Get(max, max+1)
	var buffer []core.Formula
	for _, f := range last.Slice() {
		switch {
		case f.IsLetter():
			buffer = append(buffer, core.BoxA(f.ID))
		case f.IsBoxA():
			if f.ID == core.Falsehood {
				return ExtendContradiction
			}
			buffer = append(buffer, core.Letter(f.ID))
		case f.IsBoxP():
			if f.ID == core.Falsehood {
				return ExtendContradiction
			}
			buffer = append(buffer, core.Letter(f.ID))
		}
	}
	changed := false
	for _, f := range buffer {
		if last.Add(f) {
			changed = true
		}
	}
	if changed {
		return ExtendChanged
	}
	return ExtendUnchanged
}

// leftBoundarySelfCompletion is sub-step (D) (DISCRETE only): symmetric to
// (B) on cell lo[0,1] — every letter gets a BoxP instead of a BoxA.
func leftBoundarySelfCompletion(min int, lo *IntervalSets) ExtendResult {
	last := lo.Get(min-1, min)
	var buffer []core.Formula
	for _, f := range last.Slice() {
		switch {
		case f.IsLetter():
			buffer = append(buffer, core.BoxP(f.ID))
		case f.IsBoxA():
			if f.ID == core.Falsehood {
				return ExtendContradiction
			}
			buffer = append(buffer, core.Letter(f.ID))
		case f.IsBoxP():
			if f.ID == core.Falsehood {
				return ExtendContradiction
			}
			buffer = append(buffer, core.Letter(f.ID))
		}
	}
	changed := false
	for _, f := range buffer {
		if last.Add(f) {
			changed = true
		}
	}
	if changed {
		return ExtendChanged
	}
	return ExtendUnchanged
}

// globalModalIntroduction is sub-step (E): the converse modal rule. If a
// letter holds at every cell strictly to the future of z, any cell ending
// at z is retroactively given a BoxA witness; symmetrically for the past.
func globalModalIntroduction(d, min, max int, hi *IntervalWorklist, lo *IntervalSets, state State) bool {
	changed := false

	for _, witness := range state.BoxAWitnesses {
		p := witness.ID
		for z := min; z < max; z++ {
			holds := true
			for t := z + 1; t < d; t++ {
				if !lo.Get(z, t).Has(core.Letter(p)) {
					holds = false
					break
				}
			}
			if !holds {
				continue
			}
			for r := 0; r < z; r++ {
				if lo.Get(r, z).Add(core.BoxA(p)) {
					changed = true
				}
			}
		}
	}

	for _, witness := range state.BoxPWitnesses {
		p := witness.ID
		for z := min; z < max; z++ {
			holds := true
			for r := 0; r < z; r++ {
				if !lo.Get(r, z).Has(core.Letter(p)) {
					holds = false
					break
				}
			}
			if !holds {
				continue
			}
			for t := z + 1; t < d; t++ {
				if lo.Get(z, t).Add(core.BoxP(p)) {
					changed = true
				}
			}
		}
	}

	return changed
}
