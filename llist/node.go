// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package llist implements an intrusive doubly linked list: the link
// pointers live inside the caller's own struct rather than in a
// separate wrapper node, so attaching a value to a list never
// allocates.
//
// A type becomes attachable by embedding Link:
//
//	type Job struct {
//		llist.Link
//		Name string
//	}
//
// Embedding is what makes the Node interface sealed — link() is
// unexported, so only types built on top of Link can satisfy it. A
// *Job can then be passed to AttachLast, Detach, and every other
// function in this package.
package llist

// Node is anything that can be linked into a List. It is implemented
// only by embedding Link; there is no other way to satisfy it from
// outside this package.
type Node interface {
	link() *linkPair
}

type linkPair struct {
	next, prev Node
}

// Link gives a struct the link pointers needed to participate in a
// List. The zero value is a detached node.
type Link struct {
	lp linkPair
}

func (l *Link) link() *linkPair { return &l.lp }

func nextOf(n Node) Node {
	if n == nil {
		return nil
	}
	return n.link().next
}

func prevOf(n Node) Node {
	if n == nil {
		return nil
	}
	return n.link().prev
}

func setNext(n Node, v Node) { n.link().next = v }
func setPrev(n Node, v Node) { n.link().prev = v }

// Next returns the node attached after n, or nil if n is the last
// node of its list (or detached).
func Next(n Node) Node { return nextOf(n) }

// Prev returns the node attached before n, or nil if n is the first
// node of its list (or detached).
func Prev(n Node) Node { return prevOf(n) }

// IsFirst reports whether n is nil or has no predecessor.
func IsFirst(n Node) bool { return n == nil || prevOf(n) == nil }

// IsLast reports whether n is nil or has no successor.
func IsLast(n Node) bool { return n == nil || nextOf(n) == nil }

// Direction selects which way a walk or search proceeds.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func loopNext(n Node, dir Direction) Node {
	if dir == Forward {
		return nextOf(n)
	}
	return prevOf(n)
}
