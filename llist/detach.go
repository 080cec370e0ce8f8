// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

// Detach unlinks node from list without disposing of it; the caller
// retains ownership and may attach it elsewhere. Detaching a node
// that is not part of list corrupts the list.
func Detach(list *List, node Node) {
	p, n := prevOf(node), nextOf(node)
	if p != nil {
		setNext(p, n)
	} else {
		list.first = n
	}
	if n != nil {
		setPrev(n, p)
	} else {
		list.last = p
	}
	setNext(node, nil)
	setPrev(node, nil)
	list.count--
}

// DetachFirst detaches and returns the first node, or nil if list is
// empty.
func DetachFirst(list *List) Node {
	n := list.first
	if n != nil {
		Detach(list, n)
	}
	return n
}

// DetachLast detaches and returns the last node, or nil if list is
// empty.
func DetachLast(list *List) Node {
	n := list.last
	if n != nil {
		Detach(list, n)
	}
	return n
}

// DetachAll empties list and returns its former first node. The
// chain linking the detached nodes to each other is left intact, so
// the returned value can be walked with Next.
func DetachAll(list *List) Node {
	first := list.first
	list.first, list.last, list.count = nil, nil, 0
	return first
}

// DetachCount walks from node in the given direction and reports how
// many nodes (including node itself) are reachable, without
// mutating anything.
func DetachCount(node Node, dir Direction) int {
	n := 0
	for cur := node; cur != nil; cur = loopNext(cur, dir) {
		n++
	}
	return n
}

// DetachMany detaches up to count nodes starting at node and
// proceeding in dir, and returns how many were actually detached. A
// count of 0 detaches every remaining node in that direction. The
// detached run is spliced out as a unit: only its two outer ends are
// cleared, so the internal links between its nodes survive and the
// result can still be walked with Next/Prev or counted with
// DetachCount.
func DetachMany(list *List, node Node, count int, dir Direction) int {
	if node == nil {
		return 0
	}

	head, tail := node, node
	n := 1
	if dir == Forward {
		for (count == 0 || n < count) && nextOf(tail) != nil {
			tail = nextOf(tail)
			n++
		}
	} else {
		for (count == 0 || n < count) && prevOf(head) != nil {
			head = prevOf(head)
			n++
		}
	}

	before, after := prevOf(head), nextOf(tail)
	if after != nil {
		setPrev(after, before)
	} else {
		list.last = before
	}
	if before != nil {
		setNext(before, after)
	} else {
		list.first = after
	}
	setNext(tail, nil)
	setPrev(head, nil)
	list.count -= n

	return n
}
