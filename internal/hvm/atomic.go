package hvm

import "sync/atomic"

// atomicCAS and atomicStore wrap sync/atomic for the DUP-node lock table
// and the normalization visited bit-set. The teacher reaches for
// sync/atomic too (cauefcr-HVM/src/runtime.go's reduce, for the DUP test-
// and-set), but constructs an atomic.Value around a non-atomic read/write
// pair, which never actually synchronizes anything; this wraps the plain
// word-sized primitives instead.
func atomicCAS(addr *uint32, old, new uint32) bool {
	return atomic.CompareAndSwapUint32(addr, old, new)
}

func atomicStore(addr *uint32, val uint32) {
	atomic.StoreUint32(addr, val)
}

func atomicOr64(addr *uint64, mask uint64) {
	for {
		old := atomic.LoadUint64(addr)
		if old&mask == mask {
			return
		}
		if atomic.CompareAndSwapUint64(addr, old, old|mask) {
			return
		}
	}
}

func atomicLoad64(addr *uint64) uint64 {
	return atomic.LoadUint64(addr)
}
