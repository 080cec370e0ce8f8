// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

import "code.hybscloud.com/llpool/hostalloc"

// Alloc returns size bytes of zeroed, detached storage from host,
// independent of any particular List's configuration — unlike the
// dropped Create* family (see DESIGN.md), Alloc does not know about a
// node_size or a pool, it is a raw building block for a caller that
// wants the allocation itself accounted for against a capacity-bounded
// host such as hostalloc.BoundedAllocator before constructing the
// concrete Go value it will attach. When nonBlocking is true, Alloc
// uses host's non-blocking path and returns its ErrWouldBlock instead
// of waiting for space.
func Alloc(host hostalloc.Allocator, size int, nonBlocking bool) ([]byte, error) {
	if nonBlocking {
		block, err := host.TryAlloc(size)
		if err != nil {
			return nil, err
		}
		clear(block)
		return block, nil
	}
	return host.AllocZero(size)
}

// Dealloc releases every node of a detached chain reachable from node
// in either direction: it first walks backward to the chain's head,
// then walks forward releasing each node in turn, so it can be called
// with any node belonging to the chain, not just its head. clear and
// release receive the same hook-and-route discipline Remove uses for
// attached nodes: clear, if non-nil, runs first and may itself dispose
// of the node by returning nil, in which case release is skipped for
// it.
func Dealloc(node Node, clear ClearFunc, release func(Node)) {
	if node == nil {
		return
	}
	for prevOf(node) != nil {
		node = prevOf(node)
	}

	for node != nil {
		next := nextOf(node)
		setNext(node, nil)
		setPrev(node, nil)

		n := node
		if clear != nil {
			n = clear(n)
		}
		if n != nil && release != nil {
			release(n)
		}
		node = next
	}
}
