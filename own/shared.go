// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"sync/atomic"
	"unsafe"
)

// ctl is the type-erased control block of a shared allocation group.
// Every counted reference to the group points at the same ctl, including
// aliases with a different pointee type, which is what makes owner-based
// identity independent of the pointee.
type ctl struct {
	refs atomic.Int64
	drop func()
}

// Shared is a reference-counted shared-ownership pointer. The zero value
// is the null sentinel. Copying the struct produces an uncounted alias;
// [Shared.Clone] produces a counted reference.
type Shared[T any] struct {
	p *T
	c *ctl
}

// NewShared allocates a fresh T holding v and returns a counted reference
// with use count 1. The group carries no disposer; memory is reclaimed by
// the garbage collector once all references are unreachable.
func NewShared[T any](v T) Shared[T] {
	p := &v
	c := &ctl{}
	c.refs.Store(1)
	return Shared[T]{p: p, c: c}
}

// NewSharedWith wraps an existing pointer with a disposer that runs when
// the last counted reference is released. A nil p yields the sentinel.
func NewSharedWith[T any](p *T, drop func(*T)) Shared[T] {
	if p == nil {
		return Shared[T]{}
	}
	c := &ctl{}
	c.refs.Store(1)
	if drop != nil {
		c.drop = func() { drop(p) }
	}
	return Shared[T]{p: p, c: c}
}

// Share adopts exclusive ownership from u, emptying it, and returns a
// counted reference with use count 1. The disposer carried by u becomes
// the group disposer. Sharing the sentinel yields the sentinel.
func Share[T any](u *Unique[T]) Shared[T] {
	p, drop := u.p, u.drop
	u.p = nil
	u.drop = nil
	if p == nil {
		return Shared[T]{}
	}
	c := &ctl{}
	c.refs.Store(1)
	if drop != nil {
		c.drop = func() { drop(p) }
	}
	return Shared[T]{p: p, c: c}
}

// Alias returns a counted reference to s's allocation group whose pointee
// is p. The alias keeps the whole group alive; it compares equal to s
// under owner-based identity even though the pointees differ.
func Alias[T, U any](s Shared[T], p *U) Shared[U] {
	if s.c != nil {
		s.c.refs.Add(1)
	}
	return Shared[U]{p: p, c: s.c}
}

// IsNil reports whether s is the null sentinel.
func (s Shared[T]) IsNil() bool {
	return s.p == nil
}

// Get returns the pointee, or nil for the sentinel.
func (s Shared[T]) Get() *T {
	return s.p
}

// Clone returns a new counted reference to the same allocation group,
// incrementing the use count by one.
func (s Shared[T]) Clone() Shared[T] {
	if s.c != nil {
		s.c.refs.Add(1)
	}
	return s
}

// Release drops one counted reference. When the count reaches zero the
// group disposer runs. Releasing the sentinel is a no-op. The caller must
// hold a counted reference; releasing an uncounted alias underflows the
// group it aliases.
func (s Shared[T]) Release() {
	if s.c == nil {
		return
	}
	if s.c.refs.Add(-1) == 0 && s.c.drop != nil {
		s.c.drop()
	}
}

// UseCount returns the number of counted references to the allocation
// group, or 0 for the sentinel.
func (s Shared[T]) UseCount() int64 {
	if s.c == nil {
		return 0
	}
	return s.c.refs.Load()
}

// Swap exchanges the references held by s and o.
func (s *Shared[T]) Swap(o *Shared[T]) {
	*s, *o = *o, *s
}

// OwnerEqual reports whether a and b share one allocation group. It is
// independent of the pointee: an [Alias] of a group compares equal to
// every reference of that group.
func OwnerEqual[T, U any](a Shared[T], b Shared[U]) bool {
	return a.c == b.c
}

// OwnerBefore is a strict weak ordering over allocation groups, usable as
// a map or tree key ordering. Two references to one group order false in
// both directions.
func OwnerBefore[T, U any](a Shared[T], b Shared[U]) bool {
	return uintptr(unsafe.Pointer(a.c)) < uintptr(unsafe.Pointer(b.c))
}

// OwnerHash returns a hash of the allocation-group identity, consistent
// with [OwnerEqual].
func OwnerHash[T any](s Shared[T]) uintptr {
	return uintptr(unsafe.Pointer(s.c))
}
