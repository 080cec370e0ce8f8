// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hostalloc

import (
	"bytes"
	"sync"
	"testing"

	"code.hybscloud.com/spin"
)

func TestSystemAllocator(t *testing.T) {
	var a SystemAllocator

	block, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(block) != 16 {
		t.Fatalf("len(block) = %d, want 16", len(block))
	}

	zeroed, err := a.AllocZero(8)
	if err != nil {
		t.Fatalf("AllocZero: %v", err)
	}
	if !bytes.Equal(zeroed, make([]byte, 8)) {
		t.Fatalf("AllocZero returned non-zero memory")
	}

	if _, err := a.TryAlloc(4); err != nil {
		t.Fatalf("TryAlloc: %v", err)
	}

	a.Dealloc(block) // must not panic
}

func TestBoundedAllocatorAllocDealloc(t *testing.T) {
	a := NewBoundedAllocator(32, 4)
	if a.Cap() != 4 {
		t.Fatalf("Cap() = %d, want 4", a.Cap())
	}

	blocks := make([][]byte, 0, 4)
	for i := 0; i < 4; i++ {
		b, err := a.Alloc(32)
		if err != nil {
			t.Fatalf("Alloc #%d: %v", i, err)
		}
		blocks = append(blocks, b)
	}

	a.SetNonblock(true)
	if _, err := a.TryAlloc(32); err != ErrWouldBlock {
		t.Fatalf("TryAlloc on exhausted pool = %v, want ErrWouldBlock", err)
	}

	a.Dealloc(blocks[0])
	b, err := a.TryAlloc(32)
	if err != nil {
		t.Fatalf("TryAlloc after Dealloc: %v", err)
	}
	if len(b) != 32 {
		t.Fatalf("len(b) = %d, want 32", len(b))
	}
}

func TestBoundedAllocatorWrongSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for mismatched block size")
		}
	}()
	a := NewBoundedAllocator(32, 2)
	_, _ = a.Alloc(16)
}

func TestBoundedAllocatorDoubleFreePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for double free")
		}
	}()
	a := NewBoundedAllocator(16, 2)
	b, _ := a.Alloc(16)
	a.Dealloc(b)
	a.Dealloc(b)
}

func TestBoundedAllocatorZeroesOnAllocZero(t *testing.T) {
	a := NewBoundedAllocator(16, 1)
	b, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	for i := range b {
		b[i] = 0xFF
	}
	a.Dealloc(b)

	z, err := a.AllocZero(16)
	if err != nil {
		t.Fatalf("AllocZero: %v", err)
	}
	if !bytes.Equal(z, make([]byte, 16)) {
		t.Fatalf("AllocZero did not clear reused block")
	}
}

func TestBoundedAllocatorConcurrent(t *testing.T) {
	const blockSize = 32
	const capacity = 64
	const goroutines = 16
	const iterations = 2000

	a := NewBoundedAllocator(blockSize, capacity)

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				b, err := a.Alloc(blockSize)
				if err != nil {
					t.Errorf("goroutine %d iteration %d: Alloc: %v", id, i, err)
					return
				}
				b[0] = byte(id)
				spin.Yield()
				a.Dealloc(b)
			}
		}(g)
	}

	wg.Wait()
}
