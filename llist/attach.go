// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

// chainTail walks node's forward chain (the node plus any further
// nodes reachable via Next) and returns its last node and length, so
// Attach* can splice an entire detached run in one call rather than
// just a single node.
func chainTail(node Node) (Node, int) {
	tail := node
	n := 1
	for nextOf(tail) != nil {
		tail = nextOf(tail)
		n++
	}
	return tail, n
}

// AttachFirst attaches node — or, if node has further nodes reachable
// via Next, the whole chain — at the head of list.
func AttachFirst(list *List, node Node) {
	AttachBefore(list, list.first, node)
}

// AttachLast attaches node — or, if node has further nodes reachable
// via Next, the whole chain — at the tail of list.
func AttachLast(list *List, node Node) {
	AttachAfter(list, list.last, node)
}

// AttachBefore splices node — or its whole forward chain — immediately
// before existing. existing may only be nil when list is empty;
// passing a nil reference into a non-empty list is a contract
// violation and panics, matching the original's assertion that the
// nil-reference form is reserved for initializing an empty list.
func AttachBefore(list *List, existing, node Node) {
	tail, count := chainTail(node)

	if existing == nil {
		if list.count != 0 {
			panic("llist: AttachBefore: nil reference into non-empty list")
		}
		list.first = node
		list.last = tail
		list.count = count
		return
	}

	if prev := prevOf(existing); prev != nil {
		setNext(prev, node)
		setPrev(node, prev)
	} else {
		list.first = node
	}
	setPrev(existing, tail)
	setNext(tail, existing)
	list.count += count
}

// AttachAfter splices node — or its whole forward chain — immediately
// after existing. existing may only be nil when list is empty; passing
// a nil reference into a non-empty list is a contract violation and
// panics, matching the original's assertion that the nil-reference
// form is reserved for initializing an empty list.
func AttachAfter(list *List, existing, node Node) {
	tail, count := chainTail(node)

	if existing == nil {
		if list.count != 0 {
			panic("llist: AttachAfter: nil reference into non-empty list")
		}
		list.first = node
		list.last = tail
		list.count = count
		return
	}

	if next := nextOf(existing); next != nil {
		setPrev(next, tail)
		setNext(tail, next)
	} else {
		list.last = tail
	}
	setPrev(node, existing)
	setNext(existing, node)
	list.count += count
}

// CompareFunc orders two nodes, returning a negative number if a
// sorts before b, zero if they are equal, and a positive number if a
// sorts after b.
type CompareFunc func(a, b Node) int

// AttachSorted attaches node at the position that keeps list ordered
// ascending by cmp, scanning from the head indicated by dir.
func AttachSorted(list *List, node Node, cmp CompareFunc, dir Direction) {
	if dir == Forward {
		cur := list.first
		for cur != nil && cmp(cur, node) < 0 {
			cur = nextOf(cur)
		}
		if cur == nil {
			AttachLast(list, node)
		} else {
			AttachBefore(list, cur, node)
		}
		return
	}

	cur := list.last
	for cur != nil && cmp(cur, node) > 0 {
		cur = prevOf(cur)
	}
	if cur == nil {
		AttachFirst(list, node)
	} else {
		AttachAfter(list, cur, node)
	}
}
