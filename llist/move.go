// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

// MoveFirst relocates node, already attached to list, to the front.
func MoveFirst(list *List, node Node) {
	if list.first == node {
		return
	}
	Detach(list, node)
	AttachFirst(list, node)
}

// MoveLast relocates node to the back of list.
func MoveLast(list *List, node Node) {
	if list.last == node {
		return
	}
	Detach(list, node)
	AttachLast(list, node)
}

// MoveBefore relocates node to immediately before existing, both
// already attached to list.
func MoveBefore(list *List, node, existing Node) {
	if node == existing || prevOf(existing) == node {
		return
	}
	Detach(list, node)
	AttachBefore(list, existing, node)
}

// MoveAfter relocates node to immediately after existing, both
// already attached to list.
func MoveAfter(list *List, node, existing Node) {
	if node == existing || nextOf(existing) == node {
		return
	}
	Detach(list, node)
	AttachAfter(list, existing, node)
}
