// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

import "reflect"

// FilterFunc reports whether a node matches a filter condition. A nil
// FilterFunc matches every node.
type FilterFunc func(Node) bool

func matches(match FilterFunc, n Node) bool {
	return match == nil || match(n)
}

// FilterCount returns how many nodes in list satisfy match.
func FilterCount(list *List, match FilterFunc) int {
	n := 0
	for cur := list.first; cur != nil; cur = nextOf(cur) {
		if matches(match, cur) {
			n++
		}
	}
	return n
}

// FilterRemove removes every node in list that satisfies match,
// running the list's clear/release hooks on each, and returns how
// many were removed.
func FilterRemove(list *List, match FilterFunc) int {
	n := 0
	for cur := list.first; cur != nil; {
		next := nextOf(cur)
		if matches(match, cur) {
			Remove(list, cur)
			n++
		}
		cur = next
	}
	return n
}

// FilterOperate calls operate on every node in list that satisfies
// match, and returns how many nodes it was called on. operate may
// freely mutate node contents but must not detach the node from
// list.
func FilterOperate(list *List, match FilterFunc, operate func(Node)) int {
	n := 0
	for cur := list.first; cur != nil; cur = nextOf(cur) {
		if matches(match, cur) {
			operate(cur)
			n++
		}
	}
	return n
}

// FilterMove moves every node in list that satisfies match to the
// end of *other, allocating *other with New(list.clear, list.release)
// if it is nil, and returns how many nodes were moved.
func FilterMove(list *List, other **List, match FilterFunc) int {
	if *other == nil {
		*other = New(list.clear, list.release)
	}
	n := 0
	for cur := list.first; cur != nil; {
		next := nextOf(cur)
		if matches(match, cur) {
			Detach(list, cur)
			AttachLast(*other, cur)
			n++
		}
		cur = next
	}
	return n
}

// defaultClone bit-copies cur into a freshly allocated value of the
// same concrete type, used by FilterClone when called with a nil
// clone function — the counterpart to the original always memcpy-ing
// list->node_size bytes when no clone callback was supplied. cur must
// be a pointer to a struct, the shape every Node in this package has.
func defaultClone(cur Node) Node {
	t := reflect.TypeOf(cur).Elem()
	dup := reflect.New(t)
	dup.Elem().Set(reflect.ValueOf(cur).Elem())
	cloned := dup.Interface().(Node)
	setNext(cloned, nil)
	setPrev(cloned, nil)
	return cloned
}

// FilterClone appends a clone of every node in list that satisfies
// match to *other, allocating *other with New(list.clear,
// list.release) if it is nil. clone builds the new node from the
// original; a nil clone return filters the node out. With clone nil,
// each matching node is bit-copied with defaultClone instead.
// FilterClone does not attach the original anywhere. It returns how
// many nodes were cloned.
func FilterClone(list *List, other **List, match FilterFunc, clone func(Node) Node) int {
	if *other == nil {
		*other = New(list.clear, list.release)
	}
	if clone == nil {
		clone = defaultClone
	}
	n := 0
	for cur := list.first; cur != nil; cur = nextOf(cur) {
		if matches(match, cur) {
			c := clone(cur)
			if c != nil {
				AttachLast(*other, c)
				n++
			}
		}
	}
	return n
}
