// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nonnil

import "code.hybscloud.com/nonnil/own"

// Unique is the Unique-category non-null handle: it exclusively owns an
// [own.Unique] representation. Copy and implicit move are unavailable —
// the struct is flagged by go vet on copy, and every constructor returns
// a pointer — because either would leave a handle holding the null
// sentinel. [Unique.Take] is the only ownership exit.
type Unique[T any] struct {
	noCopy noCopy
	u      own.Unique[T]
}

// NewUnique allocates a fresh T holding v and wraps it. The factory just
// allocated a live value, so it cannot violate the invariant.
func NewUnique[T any](v T) *Unique[T] {
	return &Unique[T]{u: own.NewUnique(v)}
}

// WrapUnique takes ownership of u. The handle must not be the null
// sentinel: checked builds panic, unchecked builds assume. The caller
// must not use u afterwards.
func WrapUnique[T any](u own.Unique[T]) *Unique[T] {
	assume(!u.IsNil(), "nonnil: Unique cannot wrap the null sentinel")
	return &Unique[T]{u: u}
}

// TryUnique takes ownership of u if it is not the null sentinel,
// reporting the sentinel as an absent [Option].
func TryUnique[T any](u own.Unique[T]) Option[*Unique[T]] {
	if u.IsNil() {
		return None[*Unique[T]]()
	}
	return Some(&Unique[T]{u: u})
}

// Get returns a non-owning view of the pointee. Guaranteed non-nil by
// the invariant.
func (n *Unique[T]) Get() *T {
	assume(!n.u.IsNil(), "nonnil: empty Unique (zero value or already taken)")
	return n.u.Get()
}

// Underlying returns a borrowed view of the owned representation.
// Ownership stays with the handle: the caller must not Drop or Release
// the view. There is no value-returning variant; [Unique.Take] is the
// only extraction.
func (n *Unique[T]) Underlying() own.Unique[T] {
	assume(!n.u.IsNil(), "nonnil: empty Unique (zero value or already taken)")
	return n.u
}

// Deleter returns the disposer attached to the owned representation.
func (n *Unique[T]) Deleter() func(*T) {
	return n.u.Deleter()
}

// SetDeleter replaces the disposer attached to the owned representation.
func (n *Unique[T]) SetDeleter(drop func(*T)) {
	n.u.SetDeleter(drop)
}

// Equal reports whether n and o own the same pointee address.
func (n *Unique[T]) Equal(o *Unique[T]) bool {
	return n.u.Get() == o.u.Get()
}

// Compare is a total order over owned pointee addresses: -1, 0 or 1.
func (n *Unique[T]) Compare(o *Unique[T]) int {
	return addrCompare(n.u.Get(), o.u.Get())
}

// Swap exchanges the owned representations in place. Both handles remain
// non-nil throughout; no observer can see an intermediate null state.
func (n *Unique[T]) Swap(o *Unique[T]) {
	n.u.Swap(&o.u)
}

// Take extracts the owned representation, consuming the handle. This is
// the only way to transfer ownership out of a Unique handle. The source
// is emptied; using it again is undefined behavior, caught by checked
// builds. The result can be re-wrapped:
//
//	u2 := nonnil.WrapUnique(u1.Take())
func (n *Unique[T]) Take() own.Unique[T] {
	assume(!n.u.IsNil(), "nonnil: Take on an empty Unique")
	return n.u.Move()
}

// ToShared converts exclusive ownership into shared ownership, consuming
// the handle. The source already carries the invariant, so nothing is
// revalidated; the resulting handle starts with use count 1 and inherits
// the disposer.
func ToShared[T any](n *Unique[T]) Shared[T] {
	assume(!n.u.IsNil(), "nonnil: ToShared on an empty Unique")
	u := n.u.Move()
	return Shared[T]{s: own.Share(&u)}
}
