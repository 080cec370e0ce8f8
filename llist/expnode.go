// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

// Expanded wraps a value of type T so it can be attached to a List
// without T itself embedding Link. This is the idiomatic replacement
// for appending link fields onto a foreign struct at a runtime
// offset: Go attaches through the Node interface rather than pointer
// arithmetic, so there is no offset to compute or store.
type Expanded[T any] struct {
	Link
	Object T
}

// NewExpanded returns an Expanded node wrapping object, ready to
// attach to a List.
func NewExpanded[T any](object T) *Expanded[T] {
	return &Expanded[T]{Object: object}
}

// CastObject returns the wrapped value, or the zero value of T if n
// is not an *Expanded[T].
func CastObject[T any](n Node) T {
	e, _ := n.(*Expanded[T])
	if e == nil {
		var zero T
		return zero
	}
	return e.Object
}

// CastNode returns n as an *Expanded[T], or nil if it is not one.
func CastNode[T any](n Node) *Expanded[T] {
	e, _ := n.(*Expanded[T])
	return e
}

// Closer is implemented by an Expanded object that holds a resource
// needing explicit teardown when its node leaves a list for good.
type Closer interface {
	Close()
}

// ExpandedClear is a ClearFunc for lists of *Expanded[T]: if the
// wrapped object implements Closer, Close is called before the node
// is released. This is the Go counterpart to the original's
// ExpandedDealloc, which freed the raw block backing an expanded node;
// an Expanded[T]'s own memory is already reclaimed by the garbage
// collector, so this hook's job is running whatever explicit cleanup
// the wrapped object defines, not freeing memory by hand. Unlike
// ExpandedDealloc, which returned nil to signal it had already freed
// the node itself, ExpandedClear returns n so a release hook passed to
// New can still run afterward (for example to give a reserved slot
// back to a pool).
func ExpandedClear[T any](n Node) Node {
	if e, ok := n.(*Expanded[T]); ok {
		if c, ok := any(e.Object).(Closer); ok {
			c.Close()
		}
	}
	return n
}
