// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llist

/*
A List keeps no copy of the values attached to it; the link pointers
live inside the node itself, so Attach/Detach/Move never allocate.

	type Job struct {
		llist.Link
		Name string
	}

	list := llist.New(nil, nil)
	llist.AttachLast(list, &Job{Name: "compact"})
	llist.AttachLast(list, &Job{Name: "reindex"})

	for n := list.First(); n != nil; n = llist.Next(n) {
		fmt.Println(n.(*Job).Name)
	}

New's two arguments are optional hooks run when a node leaves the
list for good (Remove, RemoveAll, FilterRemove): clear lets the node
release resources it holds, and release returns the node's own
storage to whatever allocated it — for example a mpool.Pool backing
a pool of Expanded nodes. Passing nil for both leaves removed nodes
for the garbage collector, which is the common case.

A value that does not or cannot embed Link — because it comes from
another package — can still be attached by wrapping it in Expanded.
*/
