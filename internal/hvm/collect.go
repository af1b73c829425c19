package hvm

// Collect recursively frees a subterm that became garbage because an
// interaction rule dropped it — most commonly by substituting ERA into a
// binder (see Subst). It is the only path by which the runtime reclaims
// memory; there is no tracing collector (spec Non-goals).
func Collect(w *Worker, term Lnk) {
	switch GetTag(term) {
	case DP0:
		Link(w, Loc(term, 0), Era())
	case DP1:
		Link(w, Loc(term, 1), Era())
	case VAR:
		Link(w, Loc(term, 0), Era())
	case LAM:
		if GetTag(AskArg(w, term, 0)) != ERA {
			Link(w, Loc(AskArg(w, term, 0), 0), Era())
		}
		Collect(w, AskArg(w, term, 1))
		w.Clear(Loc(term, 0), 2)
	case APP, SUP, OP2:
		Collect(w, AskArg(w, term, 0))
		Collect(w, AskArg(w, term, 1))
		w.Clear(Loc(term, 0), 2)
	case NUM, ERA, NIL:
		// no heap node
	case CTR, FUN:
		arity := uint32(w.Program.Arity(GetExt(term)))
		for i := uint32(0); i < arity; i++ {
			Collect(w, AskArg(w, term, i))
		}
		if arity > 0 {
			w.Clear(Loc(term, 0), uint64(arity))
		}
	}
}
