// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nonnil

import "code.hybscloud.com/nonnil/own"

// Shared is the Shared-category non-null handle: it holds a counted
// reference to an [own.Shared] allocation group.
//
// [Shared.Clone] is the counted copy, incrementing the group's use count.
// Plain assignment is an uncounted alias of the same reference: both
// handles stay valid and non-nil, so move is copy unconditionally — a
// handle is never emptied by handing it to someone else. The reference
// itself is released by whoever ends up holding it, through
// Take().Release().
type Shared[T any] struct {
	s own.Shared[T]
}

// NewShared allocates a fresh T holding v and wraps it with use count 1.
// The factory just allocated a live value, so it cannot violate the
// invariant.
func NewShared[T any](v T) Shared[T] {
	return Shared[T]{s: own.NewShared(v)}
}

// WrapShared adopts the caller's counted reference s. The reference must
// not be the null sentinel: checked builds panic, unchecked builds
// assume. The caller must not Release s afterwards; the handle holds the
// reference now.
func WrapShared[T any](s own.Shared[T]) Shared[T] {
	assume(!s.IsNil(), "nonnil: Shared cannot wrap the null sentinel")
	return Shared[T]{s: s}
}

// TryShared adopts s if it is not the null sentinel, reporting the
// sentinel as an absent [Option].
func TryShared[T any](s own.Shared[T]) Option[Shared[T]] {
	if s.IsNil() {
		return None[Shared[T]]()
	}
	return Some(Shared[T]{s: s})
}

// Get returns a non-owning view of the pointee. Guaranteed non-nil by
// the invariant.
func (n Shared[T]) Get() *T {
	assume(!n.s.IsNil(), "nonnil: empty Shared (zero value or already taken)")
	return n.s.Get()
}

// Underlying returns a borrowed view of the owned representation. The
// view is uncounted: it does not add a reference and must not be
// Released. Use [Shared.Clone] for a counted copy or [Shared.Take] to
// move the reference out.
func (n Shared[T]) Underlying() own.Shared[T] {
	assume(!n.s.IsNil(), "nonnil: empty Shared (zero value or already taken)")
	return n.s
}

// Clone returns a new handle holding its own counted reference to the
// same allocation group, incrementing the use count by one.
func (n Shared[T]) Clone() Shared[T] {
	assume(!n.s.IsNil(), "nonnil: Clone on an empty Shared")
	return Shared[T]{s: n.s.Clone()}
}

// UseCount returns the number of counted references sharing the
// allocation group.
func (n Shared[T]) UseCount() int64 {
	return n.s.UseCount()
}

// Equal reports whether n and o point at the same address. This is
// pointee identity; for allocation-group identity see [OwnerEqual].
func (n Shared[T]) Equal(o Shared[T]) bool {
	return n.s.Get() == o.s.Get()
}

// Compare is a total order over pointee addresses: -1, 0 or 1.
func (n Shared[T]) Compare(o Shared[T]) int {
	return addrCompare(n.s.Get(), o.s.Get())
}

// OwnerHash returns a hash of the allocation-group identity, consistent
// with [OwnerEqual].
func (n Shared[T]) OwnerHash() uintptr {
	return own.OwnerHash(n.s)
}

// Swap exchanges the held references in place. Both handles remain
// non-nil throughout, and no use count changes.
func (n *Shared[T]) Swap(o *Shared[T]) {
	n.s.Swap(&o.s)
}

// Take extracts the counted reference, consuming the handle. The use
// count does not change: the reference moves to the caller, who becomes
// responsible for eventually calling Release on it. The source is
// emptied; using it again is undefined behavior, caught by checked
// builds.
func (n *Shared[T]) Take() own.Shared[T] {
	assume(!n.s.IsNil(), "nonnil: Take on an empty Shared")
	s := n.s
	n.s = own.Shared[T]{}
	return s
}

// OwnerEqual reports whether a and b share one allocation group,
// independent of their pointee addresses or types.
func OwnerEqual[T, U any](a Shared[T], b Shared[U]) bool {
	return own.OwnerEqual(a.s, b.s)
}

// OwnerBefore is a strict weak ordering over allocation groups. Two
// handles over one group order false in both directions, even when one
// is a differently-typed alias of the allocation.
func OwnerBefore[T, U any](a Shared[T], b Shared[U]) bool {
	return own.OwnerBefore(a.s, b.s)
}
