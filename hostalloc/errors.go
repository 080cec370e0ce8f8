// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hostalloc models the four host allocation primitives the
// original pool design assumes an embedded OS provides: a blocking
// alloc, a blocking alloc-and-zero, a non-blocking alloc, and a
// dealloc. mpool and llist depend on the Allocator interface instead of
// calling into the runtime directly, so tests can swap in a
// capacity-bounded double to exercise out-of-memory paths.
package hostalloc

import "code.hybscloud.com/iox"

// ErrWouldBlock is returned by TryAlloc when no block is available and
// the caller asked not to wait for one.
var ErrWouldBlock = iox.ErrWouldBlock
