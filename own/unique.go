// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Unique is an exclusive-ownership pointer with an optional disposer.
// The zero value is the null sentinel. Unique is logically move-only:
// copying the struct duplicates the handle, so a copy must be treated as
// a borrow — use [Unique.Move] to transfer ownership.
type Unique[T any] struct {
	p    *T
	drop func(*T)
}

// NewUnique allocates a fresh T holding v and returns an owning handle
// for it. The handle carries no disposer; the allocation is reclaimed by
// the garbage collector once unreachable.
func NewUnique[T any](v T) Unique[T] {
	return Unique[T]{p: &v}
}

// NewUniqueWith wraps an existing pointer together with a disposer that
// [Unique.Drop] invokes exactly once. A nil p yields the null sentinel.
func NewUniqueWith[T any](p *T, drop func(*T)) Unique[T] {
	if p == nil {
		return Unique[T]{}
	}
	return Unique[T]{p: p, drop: drop}
}

// IsNil reports whether u is the null sentinel.
func (u Unique[T]) IsNil() bool {
	return u.p == nil
}

// Get returns the owned pointer, or nil for the sentinel.
func (u Unique[T]) Get() *T {
	return u.p
}

// Release empties u and returns the previously owned pointer without
// invoking the disposer. The disposer itself stays attached to u so a
// later pointer assigned via SetDeleter-style reuse keeps its policy;
// this matches the usual release contract of exclusive owners.
func (u *Unique[T]) Release() *T {
	p := u.p
	u.p = nil
	return p
}

// Drop disposes the owned value, if any, and empties u.
func (u *Unique[T]) Drop() {
	if u.p != nil && u.drop != nil {
		u.drop(u.p)
	}
	u.p = nil
}

// Move transfers ownership out of u, leaving it the null sentinel.
func (u *Unique[T]) Move() Unique[T] {
	v := *u
	u.p = nil
	u.drop = nil
	return v
}

// Swap exchanges the owned pointers and disposers of u and o.
func (u *Unique[T]) Swap(o *Unique[T]) {
	*u, *o = *o, *u
}

// Deleter returns the disposer attached to u, or nil.
func (u Unique[T]) Deleter() func(*T) {
	return u.drop
}

// SetDeleter replaces the disposer attached to u.
func (u *Unique[T]) SetDeleter(drop func(*T)) {
	u.drop = drop
}
