package hvm

// visited is a bit-set over heap locations, set once the reducer has
// produced WHNF there. It is shared by every worker within one
// normalization pass (spec §3 "Normalization visited-set").
type visited struct {
	bits []uint64
}

func newVisited(size uint64) *visited {
	return &visited{bits: make([]uint64, size/64+1)}
}

func (v *visited) test(loc uint64) bool {
	return atomicLoad64(&v.bits[loc>>6])>>(loc&63)&1 != 0
}

func (v *visited) set(loc uint64) {
	atomicOr64(&v.bits[loc>>6], 1<<(loc&63))
}

// children enumerates the locations normalGo should recurse into once
// term is in WHNF, per spec §4.5 step 4. OP2 contributes its two
// arguments only when slen > 1: at slen == 1, Reduce has already forced it
// to a value, so there is nothing left to walk.
func children(w *Worker, term Lnk, slen uint64) []uint64 {
	switch GetTag(term) {
	case LAM:
		return []uint64{Loc(term, 1)}
	case APP, SUP:
		return []uint64{Loc(term, 0), Loc(term, 1)}
	case OP2:
		if slen > 1 {
			return []uint64{Loc(term, 0), Loc(term, 1)}
		}
		return nil
	case DP0, DP1:
		return []uint64{Loc(term, 2)}
	case CTR, FUN:
		arity := w.Program.Arity(GetExt(term))
		locs := make([]uint64, arity)
		for i := uint32(0); i < arity; i++ {
			locs[i] = Loc(term, i)
		}
		return locs
	default:
		return nil
	}
}

// normalGo forces host to WHNF and recursively normalizes its children,
// forking one worker per child when there are at least two independent
// children and enough slice budget to give each its own worker; otherwise
// it recurses serially with the full slice, per spec §4.5.
func normalGo(w *Worker, pool *Pool, v *visited, host, sidx, slen uint64) Lnk {
	if v.test(host) {
		return AskLnk(w, host)
	}
	term := Reduce(w, host, slen)
	v.set(host)

	locs := children(w, term, slen)
	if len(locs) >= 2 && slen >= uint64(len(locs)) {
		space := slen / uint64(len(locs))
		for i := 1; i < len(locs); i++ {
			pool.Fork(sidx+uint64(i)*space, locs[i], sidx+uint64(i)*space, space, v)
		}
		Link(w, locs[0], normalGo(w, pool, v, locs[0], sidx, space))
		for i := 1; i < len(locs); i++ {
			Link(w, locs[i], pool.Join(sidx+uint64(i)*space))
		}
	} else {
		for _, loc := range locs {
			Link(w, loc, normalGo(w, pool, v, loc, sidx, slen))
		}
	}
	return term
}

// Normal repeatedly normalizes host until a full pass leaves the pool's
// total rewrite cost unchanged. The first pass runs with the pool's full
// worker count as slice budget, letting OP2 redexes sit unreduced so their
// two children can be forked; every subsequent pass runs with slen == 1,
// which forces any remaining OP2s to numeric answers (spec §4.5's
// "two-phase policy").
func (p *Pool) Normal(host uint64) Lnk {
	p.start()
	defer p.stop()

	main := p.workers[0]
	term := normalGo(main, p, newVisited(p.Heap().Size()), host, 0, p.Size())
	prevCost := p.TotalCost()
	for {
		term = normalGo(main, p, newVisited(p.Heap().Size()), host, 0, 1)
		cost := p.TotalCost()
		if cost == prevCost {
			break
		}
		prevCost = cost
	}
	return term
}
