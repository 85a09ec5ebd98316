package tableau

import "github.com/righier/hornitl/core"

// drainCell empties the to-prove worklist at (z,t), applying exactly one
// rewrite rule per drained formula. It reports whether any new fact was
// derived ("changed") and whether the attempt remains consistent ("ok");
// ok=false means this cell drained Letter(FALSEHOOD), BoxA(FALSEHOOD) or
// BoxP(FALSEHOOD), and the whole saturation attempt must abort.
//
// A clause that cannot yet fire is kept for the next pass rather than
// retried in this one: "keep" collects those, and is written back as the
// cell's new worklist once the local stack is empty. Newly derived
// formulas local to this cell (a fired clause's head) are pushed onto the
// same local stack, so they may drain within this very call.
func drainCell(z, t, d int, hi *IntervalWorklist, lo *IntervalSets, rules []core.Clause) (changed, ok bool) {
	stack := hi.Take(z, t)
	var keep []core.Formula
	cellLo := lo.Get(z, t)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case f.IsLetter():
			switch f.ID {
			case core.Truth:
				// never propagate truth
			case core.Falsehood:
				cellLo.Add(core.FALSEHOOD)
				return true, false
			default:
				if cellLo.Add(f) {
					changed = true
				}
			}

		case f.IsBoxA():
			if cellLo.Add(f) {
				changed = true
			}
			for r := t + 1; r < d; r++ {
				if lo.Get(t, r).Add(core.Letter(f.ID)) {
					changed = true
				}
			}
			if f.ID == core.Falsehood {
				return true, false
			}

		case f.IsBoxP():
			if cellLo.Add(f) {
				changed = true
			}
			for r := 0; r < z; r++ {
				if lo.Get(r, z).Add(core.Letter(f.ID)) {
					changed = true
				}
			}
			if f.ID == core.Falsehood {
				return true, false
			}

		case f.IsClauseRef():
			clause := rules[f.ID]
			fireable := true
			for _, body := range clause.Body() {
				if !cellLo.Has(body) {
					fireable = false
					break
				}
			}
			if fireable {
				cellLo.Add(f)
				changed = true
				stack = append(stack, clause.Head())
			} else {
				keep = append(keep, f)
			}
		}
	}

	hi.Set(z, t, keep)
	return changed, true
}

// copyNonClauseFormulas appends every non-ClauseRef formula from src into
// dst, returning how many were appended. ClauseRef entries identify a
// cell's own rule instances and never migrate across cells.
func copyNonClauseFormulas(dst []core.Formula, src []core.Formula) ([]core.Formula, int) {
	pushed := 0
	for _, f := range src {
		if f.IsClauseRef() {
			continue
		}
		dst = append(dst, f)
		pushed++
	}
	return dst, pushed
}

// mergeNonClauseFormulas inserts every non-ClauseRef formula of a "lo" set
// into another "lo" set, reporting whether any insertion was new.
func mergeNonClauseFormulas(dst, src core.FormulaSet) bool {
	changed := false
	for _, f := range src.Slice() {
		if f.IsClauseRef() {
			continue
		}
		if dst.Add(f) {
			changed = true
		}
	}
	return changed
}
