// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

// Remove detaches node from list and runs the list's clear/release
// hooks on it.
func Remove(list *List, node Node) {
	Detach(list, node)
	list.dealloc(node)
}

// RemoveFirst removes and returns the first node, or nil if list is
// empty. The returned node has already been passed through the
// list's clear hook.
func RemoveFirst(list *List) Node {
	n := list.first
	if n != nil {
		Remove(list, n)
	}
	return n
}

// RemoveLast removes and returns the last node, or nil if list is
// empty.
func RemoveLast(list *List) Node {
	n := list.last
	if n != nil {
		Remove(list, n)
	}
	return n
}

// RemoveAll removes every node from list, running the clear/release
// hooks on each.
func RemoveAll(list *List) {
	for n := list.first; n != nil; {
		next := nextOf(n)
		setNext(n, nil)
		setPrev(n, nil)
		list.dealloc(n)
		n = next
	}
	list.first, list.last, list.count = nil, nil, 0
}
