// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hostalloc

import (
	"math"
	"sync/atomic"
	"unsafe"

	"code.hybscloud.com/llpool/internal"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// BoundedAllocator is a fixed-capacity Allocator backed by a lock-free
// MPMC ring of preallocated blocks. It exists so tests and demos can
// exercise the "host runs out of memory" paths mpool.c handles
// explicitly (TryAlloc returning ErrWouldBlock, Alloc blocking until a
// dealloc frees a slot) without actually exhausting host memory.
//
// Every block is fixed at blockSize bytes; requesting any other size
// panics, since a bounded capacity with variable-size blocks cannot be
// represented as a slot ring.
type BoundedAllocator struct {
	_ internal.NoCopy

	blockSize int
	ring      boundedRing[[]byte]
	index     map[uintptr]int // block base address -> ring slot, built once at NewBoundedAllocator
}

// NewBoundedAllocator creates an Allocator with room for capacity
// blocks of blockSize bytes, where capacity is first rounded up to the
// next power of two, matching the ring's slot addressing scheme.
func NewBoundedAllocator(blockSize, capacity int) *BoundedAllocator {
	if blockSize < 1 {
		panic("hostalloc: blockSize must be positive")
	}
	a := &BoundedAllocator{blockSize: blockSize}
	a.ring = newBoundedRing[[]byte](capacity)
	a.index = make(map[uintptr]int, a.ring.Cap())
	a.ring.Fill(func() []byte { return make([]byte, blockSize) })
	for i := 0; i < a.ring.Cap(); i++ {
		block := a.ring.Value(i)
		a.index[uintptr(unsafe.Pointer(unsafe.SliceData(block)))] = i
	}
	return a
}

// SetNonblock toggles whether Alloc/AllocZero wait for a slot or return
// ErrWouldBlock immediately, same semantics as the ring it wraps.
func (a *BoundedAllocator) SetNonblock(nonblocking bool) {
	a.ring.SetNonblock(nonblocking)
}

func (a *BoundedAllocator) Alloc(size int) ([]byte, error) {
	if size != a.blockSize {
		panic("hostalloc: BoundedAllocator block size mismatch")
	}
	i, err := a.ring.Get()
	if err != nil {
		return nil, err
	}
	return a.ring.Value(i), nil
}

func (a *BoundedAllocator) AllocZero(size int) ([]byte, error) {
	block, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	clear(block)
	return block, nil
}

func (a *BoundedAllocator) TryAlloc(size int) ([]byte, error) {
	if size != a.blockSize {
		panic("hostalloc: BoundedAllocator block size mismatch")
	}
	entry, err := a.ring.tryGet()
	if err != nil {
		return nil, err
	}
	return a.ring.Value(int(entry & uint64(a.ring.mask))), nil
}

func (a *BoundedAllocator) Dealloc(block []byte) {
	if len(block) == 0 {
		return
	}
	key := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	i, ok := a.index[key]
	if !ok {
		panic("hostalloc: block not owned by this BoundedAllocator")
	}
	if err := a.ring.Put(i); err != nil {
		panic("hostalloc: double free detected")
	}
}

// Cap reports the allocator's fixed capacity in blocks.
func (a *BoundedAllocator) Cap() int { return a.ring.Cap() }

// boundedRing is a lock-free MPMC ring of fixed slots, adapted from the
// teacher library's BoundedPool: same CAS-retry index protocol
// (tryGet/tryPut over atomic head/tail counters with a turn-tagged empty
// marker), same cache-line remap to spread hot counters across lines,
// same spin.Wait/iox.Backoff split between "retry the CAS" and "wait for
// an external release." The ring is generic over its item type;
// BoundedAllocator instantiates it only with []byte host blocks.
type boundedRing[T any] struct {
	_ internal.NoCopy

	items      []T
	capacity   uint32
	mask       uint32
	entries    []atomic.Uint64
	remapM     uint32
	remapN     uint32
	remapMask  uint32
	head, tail atomic.Uint32

	nonblocking bool
}

func newBoundedRing[T any](capacity int) boundedRing[T] {
	if capacity < 1 || capacity > math.MaxUint32 {
		panic("hostalloc: capacity must be between 1 and MaxUint32")
	}
	capacity--
	capacity |= capacity >> 1
	capacity |= capacity >> 2
	capacity |= capacity >> 4
	capacity |= capacity >> 8
	capacity |= capacity >> 16
	capacity++

	items := make([]T, 0, capacity)

	remapM := min(internal.CacheLineSize/unsafe.Sizeof(atomic.Uint64{}), uintptr(capacity))
	remapN := max(1, uintptr(capacity)/remapM)
	remapMask := remapN - 1

	return boundedRing[T]{
		items:     items,
		capacity:  uint32(capacity),
		mask:      uint32(capacity - 1),
		remapM:    uint32(remapM),
		remapN:    uint32(remapN),
		remapMask: uint32(remapMask),
	}
}

func (r *boundedRing[T]) Fill(newFunc func() T) {
	for range r.capacity {
		r.items = append(r.items, newFunc())
	}
	r.entries = make([]atomic.Uint64, r.capacity)
	for i := range r.capacity {
		r.entries[i].Store(uint64(i))
	}
	r.tail.Store(r.capacity)
}

func (r *boundedRing[T]) SetNonblock(nonblocking bool) { r.nonblocking = nonblocking }

func (r *boundedRing[T]) Value(indirect int) T {
	if indirect&boundedRingEntryEmpty == boundedRingEntryEmpty || indirect < 0 || indirect >= int(r.capacity) {
		panic("hostalloc: invalid ring indirect")
	}
	return r.items[indirect]
}

func (r *boundedRing[T]) Cap() int { return int(r.capacity) }

func (r *boundedRing[T]) Get() (indirect int, err error) {
	var aw iox.Backoff
	for {
		entry, err := r.tryGet()
		if err == nil {
			return int(entry & uint64(r.mask)), nil
		}
		if err == iox.ErrWouldBlock {
			if r.nonblocking {
				return boundedRingEntryEmpty, err
			}
			// Capacity exhaustion is treated the same as the teacher's
			// buffer pools: an external release, not a hardware race,
			// so we yield with adaptive backoff rather than spin.
			aw.Wait()
			continue
		}
		return boundedRingEntryEmpty, err
	}
}

func (r *boundedRing[T]) Put(indirect int) error {
	entry := uint64(indirect)
	var aw iox.Backoff
	for {
		err := r.tryPut(entry)
		if err == nil {
			return nil
		}
		if err == iox.ErrWouldBlock {
			if r.nonblocking {
				return err
			}
			aw.Wait()
			continue
		}
		return err
	}
}

const (
	boundedRingEntryEmpty    = 1 << 62
	boundedRingEntryTurnMask = boundedRingEntryEmpty>>32 - 1
)

func (r *boundedRing[T]) tryGet() (entry uint64, err error) {
	sw := spin.Wait{}
	for {
		h, t := r.head.Load(), r.tail.Load()
		hi := r.remap(h & r.mask)
		e := r.entries[hi].Load()

		if h != r.head.Load() {
			sw.Once()
			continue
		}

		if h == t {
			return boundedRingEntryEmpty, iox.ErrWouldBlock
		}

		nextTurn := (h/r.capacity + 1) & boundedRingEntryTurnMask
		if e == r.empty(nextTurn) {
			r.head.CompareAndSwap(h, h+1)
			sw.Once()
			continue
		}
		ok := r.entries[hi].CompareAndSwap(e, r.empty(nextTurn))
		r.head.CompareAndSwap(h, h+1)
		if ok {
			return e, nil
		}
		sw.Once()
	}
}

func (r *boundedRing[T]) tryPut(e uint64) error {
	sw := spin.Wait{}
	for {
		h, t := r.head.Load(), r.tail.Load()
		if t != r.tail.Load() {
			sw.Once()
			continue
		}
		if t == h+r.capacity {
			return iox.ErrWouldBlock
		}
		turn, ti := (t/r.capacity)&boundedRingEntryTurnMask, r.remap(t)
		ok := r.entries[ti].CompareAndSwap(r.empty(turn), e)
		r.tail.CompareAndSwap(t, t+1)
		if ok {
			return nil
		}
		sw.Once()
	}
}

func (r *boundedRing[T]) remap(cursor uint32) int {
	p, q := cursor/r.remapN, cursor&r.remapMask
	return int(q*r.remapM + p%r.remapM)
}

func (r *boundedRing[T]) empty(turn uint32) uint64 {
	return boundedRingEntryEmpty | uint64(turn&boundedRingEntryTurnMask)
}
