// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpool

/*
Pool carves fixed-size blocks out of a chain of silos, each silo backed
by one allocation from a hostalloc.Allocator and indexed by a 32-bit
free-bit bitmap:

	memchart: [10011011]
	+------+----+----+----+----+----+----+----+----+
	|Silo1 |Used|....|....|Used|Used|....|Used|Used|
	+------+----+----+----+----+----+----+----+----+
	|Silo2 |....|....|....|....|Used|Used|Used|Used|
	+------+----+----+----+----+----+----+----+----+
	|...

Alloc scans silos from most to least recently grown, so new allocations
land in freshly grown silos and older silos are left to drain and
eventually shrink away. Dealloc scans the same order and, once the pool
is idle (no outstanding ReserveSpace guarantee) and more than half its
capacity sits unused, releases empty silos back to the host — except
the first, which was allocated at Init and is never released.

	pool, err := mpool.Init(nodeSize, hostalloc.SystemAllocator{})
	block, err := pool.Alloc()
	...
	pool.Dealloc(&block) // block set to nil
*/
