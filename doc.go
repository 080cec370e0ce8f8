// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package llpool is the root of a small collection of embedded/systems
// primitives: a fixed-block memory pool, an intrusive doubly-linked
// list, and a single-pass XML reader, all built on a shared
// host-allocation abstraction.
//
// # Packages
//
//   - hostalloc — the Allocator interface a pool grows against
//     (SystemAllocator backed by make([]byte, n), BoundedAllocator a
//     lock-free fixed-capacity ring for targets with a hard memory
//     ceiling).
//   - mpool — Pool, a fixed-block-size allocator that grows by adding
//     bitmap-indexed silos from a hostalloc.Allocator and shrinks by
//     releasing silos that have gone empty.
//   - llist — Link/Node/List, an intrusive doubly-linked list with
//     attach/detach/move/swap/split/join/filter/compare/sort
//     operations, independent of mpool; only its detached-storage
//     helper Alloc uses hostalloc.
//   - sax — Parse, a callback-driven single-pass XML reader and an
//     encoding sniffer, for documents whose shape is already known
//     (configuration files) rather than arbitrary XML.
//
// None of these packages import this root package; it exists to give
// the module a place to describe how the pieces fit together.
//
// # Dependencies
//
// llpool depends on:
//   - code.hybscloud.com/iox: the ErrWouldBlock sentinel (re-exported
//     as hostalloc.ErrWouldBlock) and the Backoff that
//     BoundedAllocator's blocking Alloc path waits with.
//   - code.hybscloud.com/spin: the spin-wait BoundedAllocator uses
//     between CAS retries on its ring.
package llpool
