// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package own provides the ownership representations wrapped by the
// nonnil package: an exclusive-ownership pointer ([Unique]) and a
// reference-counted shared-ownership pointer ([Shared]).
//
// Both types use their zero value as the null sentinel; [Unique.IsNil]
// and [Shared.IsNil] test for it. Unlike the nonnil wrappers, own types
// may legally be empty — they are the possibly-null representations the
// wrappers validate at construction.
//
// Ownership transfer is always explicit. [Unique.Move] and
// [Unique.Release] empty the source; [Shared.Clone] adds a counted
// reference and [Shared.Release] drops one, running the disposer when the
// count reaches zero. Plain assignment of a Shared value is an uncounted
// alias of the same reference.
//
// The reference count is atomic, so counted references may be cloned and
// released from concurrent goroutines. Mutating a single Unique or Shared
// value from multiple goroutines still requires external locking.
package own
