package hvm

// newTestWorker returns a single-worker heap/program pair sized generously
// enough for the small graphs these tests build by hand.
func newTestWorker(prog *Program) *Worker {
	if prog == nil {
		prog = NewProgram()
	}
	heap := NewHeap(1, 1<<16)
	return NewWorker(0, heap, prog, 1)
}
