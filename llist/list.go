// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

// ClearFunc is called on a node immediately before it leaves a list
// for good (Remove, RemoveAll, FilterRemove). It gives the caller a
// chance to release resources the node holds. If it returns nil, the
// node is considered already disposed of and Release is not called
// for it.
type ClearFunc func(Node) Node

// List is an intrusive doubly linked list header. The zero value is
// an empty, usable list with no clear or release hooks; use New to
// install either.
type List struct {
	first, last Node
	count       int
	clear       ClearFunc
	release     func(Node)
}

// New returns an empty List. clear, if non-nil, runs on every node
// right before it is removed from the list for good. release, if
// non-nil, runs after clear and is the hook for returning pool- or
// host-backed node storage (see Expanded); when release is nil,
// removed nodes are left for the garbage collector.
func New(clear ClearFunc, release func(Node)) *List {
	return &List{clear: clear, release: release}
}

// Count returns the number of nodes currently attached to the list.
func (l *List) Count() int { return l.count }

// First returns the first node, or nil if the list is empty.
func (l *List) First() Node { return l.first }

// Last returns the last node, or nil if the list is empty.
func (l *List) Last() Node { return l.last }

// LoopHead returns the node a walk in dir should start from: First
// for Forward, Last for Backward.
func (l *List) LoopHead(dir Direction) Node {
	if dir == Forward {
		return l.first
	}
	return l.last
}

func (l *List) dealloc(n Node) {
	if l.clear != nil {
		n = l.clear(n)
		if n == nil {
			return
		}
	}
	if l.release != nil {
		l.release(n)
	}
}
