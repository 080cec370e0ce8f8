// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package internal

import "unsafe"

// WordSize is the size of a native pointer on the running platform, used
// to round block sizes up to a pointer-aligned boundary.
const WordSize = unsafe.Sizeof(uintptr(0))

// AlignUp rounds size up to the next multiple of align, which must be a
// power of two.
func AlignUp(size, align int) int {
	return (size + align - 1) &^ (align - 1)
}

// AlignToWord rounds size up to a pointer-aligned boundary, mirroring the
// block-size fixup the pool performs before carving out silo slots.
func AlignToWord(size int) int {
	return AlignUp(size, int(WordSize))
}

// CacheLineAlignedMem returns a byte slice with the specified size and a
// starting address aligned to the CPU cache line size, so that adjacent
// allocations don't share a cache line and cause false sharing between
// independent silos.
func CacheLineAlignedMem(size int) []byte {
	align := uintptr(CacheLineSize)
	p := make([]byte, uintptr(size)+align-1)
	base := unsafe.Pointer(unsafe.SliceData(p))
	offset := ((uintptr(base)+align-1)/align)*align - uintptr(base)
	return unsafe.Slice((*byte)(unsafe.Add(base, offset)), size)
}
