// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpool

import (
	"errors"
	"testing"

	"code.hybscloud.com/llpool/hostalloc"
)

// exhaustibleHost wraps SystemAllocator but fails every Alloc and
// TryAlloc call once allowed has been consumed, for exercising the
// pool's out-of-memory paths without actually exhausting host memory.
type exhaustibleHost struct {
	hostalloc.SystemAllocator
	allowed int
}

var errExhausted = errors.New("exhaustibleHost: exhausted")

func (h *exhaustibleHost) Alloc(size int) ([]byte, error) {
	if h.allowed <= 0 {
		return nil, errExhausted
	}
	h.allowed--
	return h.SystemAllocator.Alloc(size)
}

func (h *exhaustibleHost) TryAlloc(size int) ([]byte, error) {
	return h.Alloc(size)
}

func TestInitReservesOneSilo(t *testing.T) {
	p, err := Init(24, hostalloc.SystemAllocator{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	stats := p.GetStatistics()
	if stats.BlockSpace != blocksPerSilo {
		t.Fatalf("BlockSpace = %d, want %d", stats.BlockSpace, blocksPerSilo)
	}
	if stats.BlocksUsed != 0 {
		t.Fatalf("BlocksUsed = %d, want 0", stats.BlocksUsed)
	}
}

func TestAllocDeallocRoundTrip(t *testing.T) {
	p, err := Init(16, hostalloc.SystemAllocator{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	const n = blocksPerSilo*3 + 5 // forces multiple silo growths
	blocks := make([][]byte, n)
	for i := range blocks {
		b, err := p.Alloc()
		if err != nil {
			t.Fatalf("Alloc #%d: %v", i, err)
		}
		if len(b) != 16 {
			t.Fatalf("len(block) = %d, want 16", len(b))
		}
		blocks[i] = b
	}

	stats := p.GetStatistics()
	if stats.BlocksUsed != n {
		t.Fatalf("BlocksUsed = %d, want %d", stats.BlocksUsed, n)
	}

	for i := range blocks {
		p.Dealloc(&blocks[i])
		if blocks[i] != nil {
			t.Fatalf("Dealloc did not nil caller slice at %d", i)
		}
	}

	stats = p.GetStatistics()
	if stats.BlocksUsed != 0 {
		t.Fatalf("BlocksUsed after full drain = %d, want 0", stats.BlocksUsed)
	}
}

func TestShrinkReleasesEmptySilosButKeepsFirst(t *testing.T) {
	p, err := Init(8, hostalloc.SystemAllocator{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	blocks := make([][]byte, blocksPerSilo*4)
	for i := range blocks {
		blocks[i], err = p.Alloc()
		if err != nil {
			t.Fatalf("Alloc #%d: %v", i, err)
		}
	}
	if got := p.GetStatistics().BlockSpace; got != blocksPerSilo*4 {
		t.Fatalf("BlockSpace = %d, want %d", got, blocksPerSilo*4)
	}

	// Draining the last three silos entirely shrinks capacity, since
	// pool.reserved is still at the idle sentinel. An empty silo is only
	// released while more than half the capacity is unused, so the last
	// silo to empty stays: with the first silo still full, exactly half
	// of the remaining two silos' capacity is unused.
	for i := blocksPerSilo; i < len(blocks); i++ {
		p.Dealloc(&blocks[i])
	}

	if got := p.GetStatistics().BlockSpace; got != blocksPerSilo*2 {
		t.Fatalf("BlockSpace after drain = %d, want %d (first silo and one empty silo retained)", got, blocksPerSilo*2)
	}
}

func TestReserveForOneUseThenAutoReleases(t *testing.T) {
	p, err := Init(8, hostalloc.SystemAllocator{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	guaranteed, err := p.ReserveSpace(blocksPerSilo*2, ReserveForOneUse)
	if err != nil {
		t.Fatalf("ReserveSpace: %v", err)
	}
	if guaranteed < blocksPerSilo*2 {
		t.Fatalf("guaranteed = %d, want >= %d", guaranteed, blocksPerSilo*2)
	}

	stats := p.GetStatistics()
	if stats.Reservation != ReserveForOneUse {
		t.Fatalf("Reservation = %v, want ReserveForOneUse", stats.Reservation)
	}

	for i := 0; i < guaranteed; i++ {
		if _, err := p.Alloc(); err != nil {
			t.Fatalf("Alloc #%d: %v", i, err)
		}
	}
	if got := p.GetStatistics().Reservation; got != ReserveRelease {
		t.Fatalf("Reservation after consuming %d reserved blocks = %v, want idle (ReserveRelease)", guaranteed, got)
	}
}

func TestReservePermanentlyBlocksShrink(t *testing.T) {
	p, err := Init(8, hostalloc.SystemAllocator{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := p.ReserveSpace(blocksPerSilo, ReservePermanently); err != nil {
		t.Fatalf("ReserveSpace: %v", err)
	}
	if p.GetStatistics().Reservation != ReservePermanently {
		t.Fatalf("Reservation not reported as permanent")
	}

	blocks := make([][]byte, blocksPerSilo+1) // one more than a silo: forces growth
	for i := range blocks {
		if blocks[i], err = p.Alloc(); err != nil {
			t.Fatalf("Alloc #%d: %v", i, err)
		}
	}
	for i := range blocks {
		p.Dealloc(&blocks[i])
	}
	if got := p.GetStatistics().BlockSpace; got != blocksPerSilo*2 {
		t.Fatalf("BlockSpace after drain = %d, want %d (permanent reservation keeps grown silo)", got, blocksPerSilo*2)
	}

	if _, err := p.ReserveSpace(0, ReserveRelease); err != nil {
		t.Fatalf("ReserveRelease: %v", err)
	}
	if p.GetStatistics().Reservation == ReservePermanently {
		t.Fatalf("ReserveRelease did not clear permanent reservation")
	}
}

func TestAllocFlexibleOversizedZeroesExactSize(t *testing.T) {
	p, err := Init(8, hostalloc.SystemAllocator{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	block, err := p.AllocFlexible(64, WithZero())
	if err != nil {
		t.Fatalf("AllocFlexible: %v", err)
	}
	if len(block) != 64 {
		t.Fatalf("len(block) = %d, want 64", len(block))
	}
	for i, b := range block {
		if b != 0 {
			t.Fatalf("block[%d] = %d, want 0", i, b)
		}
	}
}

func TestAllocFlexibleUsesPoolForSmallRequests(t *testing.T) {
	p, err := Init(32, hostalloc.SystemAllocator{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	before := p.GetStatistics().BlocksUsed
	block, err := p.AllocFlexible(10)
	if err != nil {
		t.Fatalf("AllocFlexible: %v", err)
	}
	if len(block) != 10 {
		t.Fatalf("len(block) = %d, want 10", len(block))
	}
	if after := p.GetStatistics().BlocksUsed; after != before+1 {
		t.Fatalf("BlocksUsed = %d, want %d", after, before+1)
	}
}

func TestExtractCopiesOutAndFreesSlot(t *testing.T) {
	p, err := Init(16, hostalloc.SystemAllocator{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	block, err := p.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	copy(block, []byte("0123456789abcdef"))

	orig := block
	if err := p.Extract(&block); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if &block[0] == &orig[0] {
		t.Fatalf("Extract did not copy to a new allocation")
	}
	if string(block) != "0123456789abcdef" {
		t.Fatalf("Extract copy = %q, want original contents", block)
	}
	if p.GetStatistics().BlocksUsed != 0 {
		t.Fatalf("Extract did not free the pool slot")
	}
}

func TestExtractOnForeignBlockFails(t *testing.T) {
	p, err := Init(16, hostalloc.SystemAllocator{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	foreign := make([]byte, 16)
	if err := p.Extract(&foreign); !errors.Is(err, ErrNotPooled) {
		t.Fatalf("Extract on foreign block = %v, want ErrNotPooled", err)
	}
}

func TestAllocGrowthFailurePropagatesHostError(t *testing.T) {
	host := &exhaustibleHost{allowed: 1} // only the Init silo succeeds
	p, err := Init(8, host)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	for i := 0; i < blocksPerSilo; i++ {
		if _, err := p.Alloc(); err != nil {
			t.Fatalf("Alloc #%d: %v", i, err)
		}
	}
	if _, err := p.Alloc(); !errors.Is(err, errExhausted) {
		t.Fatalf("Alloc past capacity = %v, want errExhausted", err)
	}
}

func TestDisposeReleasesAllSilos(t *testing.T) {
	p, err := Init(8, hostalloc.SystemAllocator{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	for i := 0; i < blocksPerSilo+1; i++ {
		if _, err := p.Alloc(); err != nil {
			t.Fatalf("Alloc: %v", err)
		}
	}
	p.Dispose()
	if p.GetStatistics().BlockSpace != 0 {
		t.Fatalf("BlockSpace after Dispose = %d, want 0", p.GetStatistics().BlockSpace)
	}
}
