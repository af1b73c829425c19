package hvm

// AskLnk reads the cell stored at loc.
func AskLnk(w *Worker, loc uint64) Lnk { return w.Heap.Read(loc) }

// AskArg reads the arg-th cell of the node that term points to.
func AskArg(w *Worker, term Lnk, arg uint32) Lnk { return AskLnk(w, Loc(term, arg)) }
