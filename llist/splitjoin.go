// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

// Split detaches the chain starting at node (node through list's last
// node) from list and returns it as a new List sharing list's
// clear/release hooks. If node is nil or not part of list, Split
// returns an empty list and leaves list untouched.
func Split(list *List, node Node) *List {
	other := New(list.clear, list.release)
	if node == nil || !Contains(list, node) {
		return other
	}

	prev := prevOf(node)
	n := 0
	for cur := node; cur != nil; cur = nextOf(cur) {
		n++
	}

	other.first = node
	other.last = list.last
	other.count = n

	if prev != nil {
		setNext(prev, nil)
		list.last = prev
	} else {
		list.first, list.last = nil, nil
	}
	setPrev(node, nil)
	list.count -= n

	return other
}

// Join appends the contents of *other to the end of list and clears
// *other to nil. Joining a nil *other, or one that is already nil, is
// a no-op.
func Join(list *List, other **List) {
	if other == nil || *other == nil {
		return
	}
	o := *other
	if o.first != nil {
		if list.last != nil {
			setNext(list.last, o.first)
			setPrev(o.first, list.last)
		} else {
			list.first = o.first
		}
		list.last = o.last
		list.count += o.count
	}
	*other = nil
}
