// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

// SwapInside exchanges the positions of node1 and node2, both
// attached to list. Adjacent nodes are handled as a special case so
// the general non-adjacent splice never has to reason about a node
// pointing at itself.
func SwapInside(list *List, node1, node2 Node) {
	if node1 == node2 {
		return
	}

	p1, n1 := prevOf(node1), nextOf(node1)
	p2, n2 := prevOf(node2), nextOf(node2)

	if n1 == node2 {
		// [... p1, node1, node2, n2 ...] -> [... p1, node2, node1, n2 ...]
		if p1 != nil {
			setNext(p1, node2)
		} else {
			list.first = node2
		}
		setPrev(node2, p1)
		setNext(node2, node1)
		setPrev(node1, node2)
		setNext(node1, n2)
		if n2 != nil {
			setPrev(n2, node1)
		} else {
			list.last = node1
		}
		return
	}

	if n2 == node1 {
		// [... p2, node2, node1, n1 ...] -> [... p2, node1, node2, n1 ...]
		if p2 != nil {
			setNext(p2, node1)
		} else {
			list.first = node1
		}
		setPrev(node1, p2)
		setNext(node1, node2)
		setPrev(node2, node1)
		setNext(node2, n1)
		if n1 != nil {
			setPrev(n1, node2)
		} else {
			list.last = node2
		}
		return
	}

	if p1 != nil {
		setNext(p1, node2)
	} else {
		list.first = node2
	}
	if n1 != nil {
		setPrev(n1, node2)
	} else {
		list.last = node2
	}
	if p2 != nil {
		setNext(p2, node1)
	} else {
		list.first = node1
	}
	if n2 != nil {
		setPrev(n2, node1)
	} else {
		list.last = node1
	}
	setPrev(node1, p2)
	setNext(node1, n2)
	setPrev(node2, p1)
	setNext(node2, n1)
}

// SwapBetween exchanges node1 (attached to list1) with node2
// (attached to list2), moving each into the other's old slot. If
// list1 and list2 are the same list it delegates to SwapInside.
func SwapBetween(list1 *List, node1 Node, list2 *List, node2 Node) {
	if list1 == list2 {
		SwapInside(list1, node1, node2)
		return
	}

	p1, n1 := prevOf(node1), nextOf(node1)
	p2, n2 := prevOf(node2), nextOf(node2)

	if p1 != nil {
		setNext(p1, node2)
	} else {
		list1.first = node2
	}
	if n1 != nil {
		setPrev(n1, node2)
	} else {
		list1.last = node2
	}
	if p2 != nil {
		setNext(p2, node1)
	} else {
		list2.first = node1
	}
	if n2 != nil {
		setPrev(n2, node1)
	} else {
		list2.last = node1
	}
	setPrev(node2, p1)
	setNext(node2, n1)
	setPrev(node1, p2)
	setNext(node1, n2)
}

// SwapAll exchanges the entire contents of list1 and list2 in O(1),
// without touching any node's own links.
func SwapAll(list1, list2 *List) {
	list1.first, list2.first = list2.first, list1.first
	list1.last, list2.last = list2.last, list1.last
	list1.count, list2.count = list2.count, list1.count
}
