// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mpool implements a fixed-block-size memory pool backed by a
// chain of bitmap-indexed silos. For workloads that repeatedly
// allocate and free objects of one size — most notably linked-list
// nodes — carving fixed slots out of a handful of large allocations is
// far cheaper than going through the general-purpose allocator on every
// call.
package mpool

import (
	"errors"

	"code.hybscloud.com/llpool/hostalloc"
	"code.hybscloud.com/llpool/internal"
)

// ErrNotPooled is returned by Extract when the given block was not
// allocated from this pool.
var ErrNotPooled = errors.New("mpool: block was not allocated from this pool")

var errSilosFull = errors.New("mpool: no free slot in any silo")

// ReservationMode controls whether guaranteed capacity set aside by
// ReserveSpace survives future deallocations.
type ReservationMode int

const (
	// ReserveRelease clears any outstanding reservation and, if the
	// pool was already idle, immediately releases empty non-first
	// silos back to the host.
	ReserveRelease ReservationMode = iota
	// ReserveForOneUse guarantees the next allocations will succeed
	// without growing the pool, but the guarantee is consumed as
	// Alloc/AllocFlexible calls are made and ordinary shrink-on-dealloc
	// resumes once it is exhausted.
	ReserveForOneUse
	// ReservePermanently behaves like ReserveForOneUse but the
	// reservation never expires: the pool never shrinks below the
	// reserved capacity until ReserveRelease is called.
	ReservePermanently
)

// Statistics reports a snapshot of a Pool's configuration and
// occupancy.
type Statistics struct {
	BlockSize   int
	BlockSpace  int
	BlocksUsed  int
	BlocksFree  int
	Reservation ReservationMode
	Nonblocking bool
	ZeroOnAlloc bool
}

// Option configures a Pool at Init time.
type Option func(*Pool)

// WithNonblockingHost makes Alloc use the host Allocator's TryAlloc
// instead of Alloc when it needs to grow the pool, so a host allocator
// under memory pressure fails fast (ErrWouldBlock) instead of blocking
// the caller. AllocFlexible does not consult this setting; it uses
// TryAlloc only when WithNoWait is passed on that call.
func WithNonblockingHost() Option {
	return func(p *Pool) { p.nonblocking = true }
}

// WithZeroOnAlloc makes every block returned by Alloc and AllocFlexible
// zeroed before use; a per-call option cannot turn this off.
func WithZeroOnAlloc() Option {
	return func(p *Pool) { p.zeroOnAlloc = true }
}

// Pool is a fixed-block-size memory pool. The zero value is not usable;
// construct one with Init.
type Pool struct {
	blockSize int
	capacity  int
	used      int
	reserved  int // signed: see reservation sentinel semantics below

	nonblocking bool
	zeroOnAlloc bool

	host  hostalloc.Allocator
	silos []*silo
}

// reservation sentinel: reserved == blocksPerSilo means "idle", i.e. no
// reservation is outstanding. Init sets reserved to blocksPerSilo. A
// one-use reservation is added on top of the idle value, and every
// Alloc/AllocFlexible served from the pool decrements reserved while it
// is above blocksPerSilo, so the pool returns to idle once the reserved
// blocks have been handed out. A negative value means the reservation
// is permanent.

// Init creates a pool of fixed block size blockSize, rounded up to a
// pointer-aligned boundary, with one silo of guaranteed capacity
// already allocated from host.
func Init(blockSize int, host hostalloc.Allocator, opts ...Option) (*Pool, error) {
	if blockSize < 1 {
		panic("mpool: blockSize must be positive")
	}
	if host == nil {
		host = hostalloc.SystemAllocator{}
	}

	p := &Pool{
		blockSize: internal.AlignToWord(blockSize),
		reserved:  blocksPerSilo,
		host:      host,
	}
	for _, opt := range opts {
		opt(p)
	}

	first, err := p.growSilo(false)
	if err != nil {
		return nil, err
	}
	p.silos = append(p.silos, first)
	p.capacity = blocksPerSilo
	return p, nil
}

// Alloc returns one block of the pool's fixed block size, growing the
// pool by one silo if every existing silo is full.
func (p *Pool) Alloc() ([]byte, error) {
	block, err := p.allocFromSilos()
	if err == errSilosFull {
		s, gerr := p.growSilo(p.nonblocking)
		if gerr != nil {
			return nil, gerr
		}
		p.silos = append(p.silos, s)
		p.capacity += blocksPerSilo
		block = p.allocBlockFrom(s)
	} else if err != nil {
		return nil, err
	}
	if p.zeroOnAlloc {
		clear(block)
	}
	return block, nil
}

// AllocOption configures a single AllocFlexible call.
type AllocOption func(*allocOpts)

type allocOpts struct {
	nowait bool
	zero   bool
}

// WithNoWait makes this call use the host's TryAlloc instead of Alloc
// when the request must be satisfied directly from the host (either
// because size exceeds the pool's block size, or because every silo is
// full and a new one must be grown).
func WithNoWait() AllocOption { return func(o *allocOpts) { o.nowait = true } }

// WithZero zeroes the returned block, regardless of the pool's
// WithZeroOnAlloc setting.
func WithZero() AllocOption { return func(o *allocOpts) { o.zero = true } }

// AllocFlexible allocates size bytes, using pool slots when size fits
// the pool's block size and falling back directly to the host allocator
// for larger requests — useful when oversized allocations are the rare
// exception and should not force every block in the pool to be bigger.
func (p *Pool) AllocFlexible(size int, opts ...AllocOption) ([]byte, error) {
	var o allocOpts
	for _, f := range opts {
		f(&o)
	}
	zero := o.zero || p.zeroOnAlloc

	if size <= p.blockSize {
		block, err := p.allocFromSilos()
		if err == errSilosFull {
			s, gerr := p.growSilo(o.nowait)
			if gerr != nil {
				return nil, gerr
			}
			p.silos = append(p.silos, s)
			p.capacity += blocksPerSilo
			block = p.allocBlockFrom(s)
		} else if err != nil {
			return nil, err
		}
		if zero {
			clear(block)
		}
		return block[:size], nil
	}

	var block []byte
	var err error
	if o.nowait {
		block, err = p.host.TryAlloc(size)
	} else {
		block, err = p.host.Alloc(size)
	}
	if err != nil {
		return nil, err
	}
	if zero {
		clear(block) // zero exactly size bytes, not blockSize
	}
	return block, nil
}

// Dealloc returns *block to the pool it was allocated from, or to the
// host allocator if it did not come from this pool (matching the
// original library's fallback for pointers that escaped to a plain
// allocation path). *block is set to nil in either case.
func (p *Pool) Dealloc(block *[]byte) {
	if block == nil || len(*block) == 0 {
		return
	}
	for i := len(p.silos) - 1; i >= 0; i-- {
		s := p.silos[i]
		if s.contains(*block) {
			s.dealloc(p.blockSize, *block)
			p.used--
			*block = nil
			if len(p.silos) > 1 && p.reserved == blocksPerSilo && p.capacity > p.used*2 {
				p.cleanupEmptySilos(false)
			}
			return
		}
	}
	p.host.Dealloc(*block)
	*block = nil
}

// Extract copies *block out of the pool into host-allocated memory,
// releases the pool slot, and repoints *block at the copy. Use this
// when handing ownership of a block to code that will dealloc it
// directly through a host allocator rather than through this Pool.
// Returns ErrNotPooled if *block did not come from this pool.
func (p *Pool) Extract(block *[]byte) error {
	if block == nil || len(*block) == 0 {
		panic("mpool: Extract on nil block")
	}
	for i := 0; i < len(p.silos); i++ {
		s := p.silos[i]
		if s.contains(*block) {
			cp, err := p.host.TryAlloc(p.blockSize)
			if err != nil {
				return err
			}
			copy(cp, *block)
			s.dealloc(p.blockSize, *block)
			p.used--
			*block = cp
			return nil
		}
	}
	return ErrNotPooled
}

// ReserveSpace guarantees that at least amount further allocations will
// succeed without growing the pool, by eagerly growing it now. It
// returns the amount actually guaranteed, which may be less than
// requested if the host allocator cannot supply more silos right now,
// or more if it was rounded up to a whole number of silos.
//
// ReserveRelease clears any standing reservation (converting a
// permanent one back to consumable) and, if the pool was already idle,
// releases any silos that are now empty.
func (p *Pool) ReserveSpace(amount int, mode ReservationMode) (int, error) {
	if mode == ReserveRelease {
		if p.reserved < 0 {
			p.reserved = -p.reserved
		}
		if p.reserved == blocksPerSilo {
			p.cleanupEmptySilos(true)
		}
		return 0, nil
	}

	reserved := p.capacity - p.used
	for reserved < amount {
		s, err := p.growSilo(false)
		if err != nil {
			break
		}
		p.silos = append(p.silos, s)
		p.capacity += blocksPerSilo
		reserved += blocksPerSilo
	}
	p.reserved += reserved
	if mode == ReservePermanently {
		p.reserved = -p.reserved
	}
	return reserved, nil
}

// GetStatistics returns a snapshot of the pool's configuration and
// current occupancy.
func (p *Pool) GetStatistics() Statistics {
	stats := Statistics{
		BlockSize:   p.blockSize,
		BlockSpace:  p.capacity,
		BlocksUsed:  p.used,
		BlocksFree:  p.capacity - p.used,
		Nonblocking: p.nonblocking,
		ZeroOnAlloc: p.zeroOnAlloc,
	}
	if p.reserved != blocksPerSilo {
		if p.reserved < 0 {
			stats.Reservation = ReservePermanently
		} else {
			stats.Reservation = ReserveForOneUse
		}
	}
	return stats
}

// Dispose releases every silo back to the host allocator. The Pool must
// not be used afterward.
func (p *Pool) Dispose() {
	for _, s := range p.silos {
		p.host.Dealloc(s.blocks)
	}
	p.silos = nil
	p.capacity = 0
	p.used = 0
}

func (p *Pool) allocFromSilos() ([]byte, error) {
	for i := len(p.silos) - 1; i >= 0; i-- {
		s := p.silos[i]
		if !s.full() {
			return p.allocBlockFrom(s), nil
		}
	}
	return nil, errSilosFull
}

func (p *Pool) allocBlockFrom(s *silo) []byte {
	block := s.alloc(p.blockSize)
	p.used++
	if p.reserved > blocksPerSilo {
		p.reserved--
	}
	return block
}

func (p *Pool) growSilo(nowait bool) (*silo, error) {
	size := p.blockSize * blocksPerSilo
	var buf []byte
	var err error
	if nowait {
		buf, err = p.host.TryAlloc(size)
	} else {
		buf, err = p.host.Alloc(size)
	}
	if err != nil {
		return nil, err
	}
	return &silo{blocks: buf}, nil
}

// cleanupEmptySilos releases empty silos after the permanent first one.
// If all is false it stops after releasing the first empty silo found,
// matching the incremental cleanup the original performs on every
// dealloc rather than scanning the whole chain each time.
func (p *Pool) cleanupEmptySilos(all bool) {
	i := 1
	for i < len(p.silos) {
		if p.silos[i].empty() {
			p.host.Dealloc(p.silos[i].blocks)
			p.silos = append(p.silos[:i], p.silos[i+1:]...)
			p.capacity -= blocksPerSilo
			if !all {
				return
			}
			continue
		}
		i++
	}
}
