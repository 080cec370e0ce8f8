// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hostalloc

import "code.hybscloud.com/llpool/internal"

// Allocator is the contract mpool and llist need from whatever backs
// their storage. It mirrors the four os_block_* primitives the original
// library assumed an embedded target supplied:
//
//	os_block_alloc            -> Alloc
//	os_block_alloc_and_clear  -> AllocZero
//	os_block_alloc_no_wait    -> TryAlloc
//	os_block_dealloc          -> Dealloc
//
// Alloc and AllocZero may block the calling goroutine until memory is
// available; TryAlloc never blocks and returns ErrWouldBlock instead.
// Implementations must be safe for concurrent use.
type Allocator interface {
	// Alloc returns a block of exactly size bytes, waiting if necessary.
	Alloc(size int) ([]byte, error)

	// AllocZero returns a zeroed block of exactly size bytes, waiting if
	// necessary.
	AllocZero(size int) ([]byte, error)

	// TryAlloc returns a block of exactly size bytes without waiting,
	// or ErrWouldBlock if none is available right now.
	TryAlloc(size int) ([]byte, error)

	// Dealloc releases a block previously returned by this Allocator.
	// Passing a block not obtained from this Allocator is a programmer
	// error and may panic.
	Dealloc(block []byte)
}

// SystemAllocator satisfies Allocator directly from the Go runtime heap.
// It never blocks and never fails: TryAlloc behaves identically to
// Alloc since the host runtime, unlike the embedded target the original
// library targeted, does not expose a distinct non-blocking allocation
// path. Blocks are cache-line aligned, so a grown mpool silo never
// starts mid cache line.
type SystemAllocator struct{}

func (SystemAllocator) Alloc(size int) ([]byte, error) {
	return internal.CacheLineAlignedMem(size), nil
}

func (SystemAllocator) AllocZero(size int) ([]byte, error) {
	// the backing array is already zeroed; kept as a distinct method to
	// preserve the caller-visible contract that zeroing is explicit.
	return internal.CacheLineAlignedMem(size), nil
}

func (SystemAllocator) TryAlloc(size int) ([]byte, error) {
	return internal.CacheLineAlignedMem(size), nil
}

func (SystemAllocator) Dealloc(_ []byte) {}
