// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

// GetNode returns the node at index, walking from whichever end of
// list is closer. It returns nil if index is out of range.
func GetNode(list *List, index int) Node {
	if index < 0 || index >= list.count {
		return nil
	}
	if index < list.count/2 {
		n := list.first
		for i := 0; i < index; i++ {
			n = nextOf(n)
		}
		return n
	}
	n := list.last
	for i := list.count - 1; i > index; i-- {
		n = prevOf(n)
	}
	return n
}

// GetIndex returns node's position in list, or -1 if node is nil or
// not attached to list.
func GetIndex(list *List, node Node) int {
	if node == nil {
		return -1
	}
	index := 0
	for cur := list.first; cur != nil; cur = nextOf(cur) {
		if cur == node {
			return index
		}
		index++
	}
	return -1
}

// LastIndex returns the index of the last node, or -1 for an empty
// list.
func LastIndex(list *List) int { return list.count - 1 }

// SetIndex relocates node, already attached to list, to position
// index and returns the index it actually ends up at. An
// out-of-range index moves node to the end of list.
func SetIndex(list *List, node Node, index int) int {
	current := GetNode(list, index)
	if current == nil {
		MoveLast(list, node)
		return LastIndex(list)
	}
	if GetIndex(list, node) < index {
		MoveAfter(list, node, current)
	} else {
		MoveBefore(list, node, current)
	}
	return index
}

// Contains reports whether node is currently attached to list.
func Contains(list *List, node Node) bool {
	return GetIndex(list, node) > -1
}

// FindNode walks from start in dir, returning the first node for
// which match returns true.
func FindNode(start Node, match func(Node) bool, dir Direction) Node {
	for cur := start; cur != nil; cur = loopNext(cur, dir) {
		if match(cur) {
			return cur
		}
	}
	return nil
}

// FindPair walks from start in dir, returning the first node that
// cmp reports as equal (cmp(cur, target) == 0) to target.
func FindPair(start Node, cmp CompareFunc, target Node, dir Direction) Node {
	if target == nil {
		return nil
	}
	for cur := start; cur != nil; cur = loopNext(cur, dir) {
		if cmp(cur, target) == 0 {
			return cur
		}
	}
	return nil
}
