package hvm

// Link writes cell at loc and, if cell is a VAR/DP0/DP1, repairs the
// binder's ARG back-edge to point at loc. This maintains the invariant
// that every VAR/DP0/DP1 cell at a use site has a matching ARG cell at its
// binder.
func Link(w *Worker, loc uint64, cell Lnk) Lnk {
	w.Heap.Write(loc, cell)
	if GetTag(cell) <= VAR {
		// DP0 points at its binder's out0 slot, DP1 at out1, VAR at its
		// single slot (slot 0). The DP1 tag value is 1, which doubles as
		// the slot offset.
		slot := uint64(0)
		if GetTag(cell) == DP1 {
			slot = 1
		}
		w.Heap.Write(Loc(cell, uint32(slot)), Arg(loc))
	}
	return cell
}

// Subst substitutes a bound variable's occurrence. If the binder slot lnk
// is an ARG, val becomes the value at that use site. If the binder slot is
// ERA, the binder never used its variable, so val is garbage and is
// collected immediately.
func Subst(w *Worker, lnk, val Lnk) {
	if GetTag(lnk) != ERA {
		Link(w, Loc(lnk, 0), val)
	} else {
		Collect(w, val)
	}
}
