// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

import "math/rand"

// Sort orders list ascending by cmp using a stable double-ended
// selection sort: each pass pulls the current highest node into the
// front of a bottom chain and the current lowest into the back of a
// top chain, so the pass count is halved compared to a single-ended
// selection sort. Equal nodes keep their relative order.
func Sort(list *List, cmp CompareFunc) {
	if cmp == nil || list.count <= 1 {
		return
	}

	top := New(list.clear, list.release)
	bottom := New(list.clear, list.release)

	for list.first != nil {
		high := list.first
		low := list.first
		for node := nextOf(list.first); node != nil; node = nextOf(node) {
			if cmp(node, high) >= 0 {
				high = node
			} else if cmp(node, low) < 0 {
				low = node
			}
		}

		Detach(list, high)
		AttachFirst(bottom, high)

		if high != low {
			Detach(list, low)
			AttachLast(top, low)
		}
	}

	Join(list, &top)
	Join(list, &bottom)
}

// Verify reports whether list is already ordered ascending by cmp. It
// walks the list forward once; the step cap guards against a caller
// passing a corrupted count rather than relying on any temporary
// mutation of the list's own links.
func Verify(list *List, cmp CompareFunc) bool {
	if list.count <= 1 {
		return true
	}
	steps := 0
	for node := list.first; steps <= list.count; steps++ {
		next := nextOf(node)
		if next == nil {
			break
		}
		if cmp(node, next) > 0 {
			return false
		}
		node = next
	}
	return true
}

// Reverse rearranges list so its nodes appear in the opposite order.
func Reverse(list *List) {
	if list.count <= 1 {
		return
	}
	node := nextOf(list.first)
	list.last = list.first
	for node != nil {
		next := nextOf(node)
		setNext(node, list.first)
		setPrev(list.first, node)
		list.first = node
		node = next
	}
	setPrev(list.first, nil)
	setNext(list.last, nil)
}

// Shuffle randomizes the order of list's nodes in place by repeatedly
// swapping random pairs. randomizer, if non-nil, supplies the random
// bits; otherwise math/rand is used.
func Shuffle(list *List, randomizer func() int) {
	n := list.count
	if n <= 1 {
		return
	}

	next := func() int {
		if randomizer != nil {
			return randomizer()
		}
		return rand.Int()
	}
	mod := func(v int) int { return ((v % n) + n) % n }

	random := next()
	node2 := GetNode(list, mod(random))

	for loop := n * 2; loop > 1; loop-- {
		var node1 Node
		if nextOf(node2) != nil {
			node1 = nextOf(node2)
		} else {
			node1 = list.first
		}

		random += next()
		node2 = GetNode(list, mod(random))

		SwapInside(list, node1, node2)
	}
}

// Unique removes duplicate nodes, walking from the head given by dir
// and comparing with cmp; for each set of equal nodes, adjacent or not,
// only the one closest to that head survives.
func Unique(list *List, cmp CompareFunc, dir Direction) {
	if cmp == nil {
		return
	}

	loop := list.LoopHead(dir)
	for loop != nil {
		node := loop
		if dir == Forward {
			for nextOf(node) != nil {
				if cmp(loop, nextOf(node)) == 0 {
					Remove(list, nextOf(node))
				} else {
					node = nextOf(node)
				}
			}
		} else {
			for prevOf(node) != nil {
				if cmp(loop, prevOf(node)) == 0 {
					Remove(list, prevOf(node))
				} else {
					node = prevOf(node)
				}
			}
		}
		loop = loopNext(loop, dir)
	}
}
