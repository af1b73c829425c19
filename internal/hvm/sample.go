package hvm

// This file defines a small builtin program — a binary tree generator and
// a summing fold over it — used to exercise FUN/CTR dispatch end to end
// (both from tests and from the cmd/hvm driver). It plays the role the
// teacher's GenTree/Sum benchmark pair plays in cauefcr-HVM: a fan-out
// heavy workload that forces every worker in the pool to pull its own
// share of the tree.
const (
	CtorLeaf = uint32(0)
	CtorNode = uint32(1)
	FnGen    = uint32(2)
	FnSum    = uint32(3)
)

// mustAlloc aborts the process on heap exhaustion. Rule bodies run deep
// inside Reduce's state machine, with no error channel back to the
// caller; per heap.go's ErrHeapExhausted contract, running out of heap is
// fatal, not retryable, so there is nothing a recovered error could do
// here besides what panic already does.
func mustAlloc(w *Worker, size uint64) uint64 {
	loc, err := w.Alloc(size)
	if err != nil {
		panic(err)
	}
	return loc
}

func allocArg(w *Worker, val Lnk) uint64 {
	loc := mustAlloc(w, 1)
	Link(w, loc, val)
	return loc
}

// NewSampleProgram registers Gen/Sum and their constructors.
//
//	Gen(0) = Leaf(1)
//	Gen(n) = Node(Gen(dup0(n-1)), Gen(dup1(n-1)))
//	Sum(Leaf(v))    = v
//	Sum(Node(l, r)) = Sum(l) + Sum(r)
func NewSampleProgram() *Program {
	p := NewProgram()
	p.DefineCtor(CtorLeaf, "Leaf", 1)
	p.DefineCtor(CtorNode, "Node", 2)
	p.DefineFunction(FnGen, &Function{
		Name:    "Gen",
		Arity:   1,
		Stricts: []uint32{0},
		Rules: []Rule{
			{Patterns: []Pattern{{Kind: PatNum, NumVal: 0}}, Body: genZero},
			{Patterns: []Pattern{{Kind: PatAny}}, Body: genSucc},
		},
	})
	p.DefineFunction(FnSum, &Function{
		Name:    "Sum",
		Arity:   1,
		Stricts: []uint32{0},
		Rules: []Rule{
			{Patterns: []Pattern{{Kind: PatCtr, CtorID: CtorLeaf}}, Body: sumLeaf},
			{Patterns: []Pattern{{Kind: PatCtr, CtorID: CtorNode}}, Body: sumNode},
		},
	})
	return p
}

func genZero(w *Worker, host uint64, args []Lnk) Lnk {
	loc := mustAlloc(w, 1)
	Link(w, loc, Num(1))
	return Ctr(CtorLeaf, loc)
}

func genSucc(w *Worker, host uint64, args []Lnk) Lnk {
	n := GetNum(args[0])

	dupLoc := mustAlloc(w, 3)
	label := w.FreshLabel()
	Link(w, dupLoc+2, Num(n-1))

	nodeLoc := mustAlloc(w, 2)
	Link(w, nodeLoc, Fun(FnGen, allocArg(w, Dp0(label, dupLoc))))
	Link(w, nodeLoc+1, Fun(FnGen, allocArg(w, Dp1(label, dupLoc))))
	return Ctr(CtorNode, nodeLoc)
}

func sumLeaf(w *Worker, host uint64, args []Lnk) Lnk {
	leaf := args[0]
	val := AskArg(w, leaf, 0)
	w.Clear(Loc(leaf, 0), 1)
	return val
}

func sumNode(w *Worker, host uint64, args []Lnk) Lnk {
	node := args[0]
	left := AskArg(w, node, 0)
	right := AskArg(w, node, 1)
	w.Clear(Loc(node, 0), 2)

	opLoc := mustAlloc(w, 2)
	Link(w, opLoc, Fun(FnSum, allocArg(w, left)))
	Link(w, opLoc+1, Fun(FnSum, allocArg(w, right)))
	return Op2(ADD, opLoc)
}

// BuildGenCall allocates a root Gen(depth) application on w's band and
// returns its location, ready to be handed to Pool.Normal.
func BuildGenCall(w *Worker, depth uint64) uint64 {
	host := mustAlloc(w, 1)
	Link(w, host, Fun(FnGen, allocArg(w, Num(depth))))
	return host
}

// BuildSumOfGen allocates a root Sum(Gen(depth)) application, the
// benchmark cmd/hvm runs (sized by its -depth flag): it forces the runtime to fan a
// tree of 2^depth leaves out across the worker pool and fold it back down
// to a single number.
func BuildSumOfGen(w *Worker, depth uint64) uint64 {
	host := mustAlloc(w, 1)
	gen := allocArg(w, Num(depth))
	Link(w, host, Fun(FnSum, allocArg(w, Fun(FnGen, gen))))
	return host
}
