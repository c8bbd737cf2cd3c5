// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nonnil

import (
	"cmp"
	"unsafe"
)

// Ptr is the Raw-category non-null handle: it wraps a bare *T without
// owning it. Ptr is a plain value type; assignment copies the address and
// the source stays valid, so move is copy. Ptr is comparable, and two
// handles compare equal exactly when they wrap the same address.
//
// The zero Ptr violates the invariant; it exists only as the poisoned
// state left behind by [Ptr.Take]. Checked builds detect any use of it.
type Ptr[T any] struct {
	p *T
}

// NewPtr wraps p. The pointer must not be nil: checked builds panic,
// unchecked builds assume.
func NewPtr[T any](p *T) Ptr[T] {
	assume(p != nil, "nonnil: Ptr cannot wrap nil")
	return Ptr[T]{p: p}
}

// TryPtr wraps p if it is not nil, reporting nil as an absent [Option].
func TryPtr[T any](p *T) Option[Ptr[T]] {
	if p == nil {
		return None[Ptr[T]]()
	}
	return Some(Ptr[T]{p: p})
}

// Get returns the wrapped pointer. Guaranteed non-nil by the invariant;
// no nil branch survives unchecked builds.
func (n Ptr[T]) Get() *T {
	assume(n.p != nil, "nonnil: empty Ptr (zero value or already taken)")
	return n.p
}

// Equal reports whether n and o wrap the same address. Equivalent to ==.
func (n Ptr[T]) Equal(o Ptr[T]) bool {
	return n.p == o.p
}

// Compare is a total order over wrapped addresses: -1, 0 or 1.
func (n Ptr[T]) Compare(o Ptr[T]) int {
	return addrCompare(n.p, o.p)
}

// Swap exchanges the wrapped pointers. Both handles remain non-nil.
func (n *Ptr[T]) Swap(o *Ptr[T]) {
	n.p, o.p = o.p, n.p
}

// Take extracts the wrapped pointer, consuming the handle. The source is
// emptied; using it again is undefined behavior, caught by checked
// builds. The result can be re-wrapped immediately:
//
//	p2 := nonnil.NewPtr(p1.Take())
func (n *Ptr[T]) Take() *T {
	p := n.p
	assume(p != nil, "nonnil: Take on an empty Ptr")
	n.p = nil
	return p
}

// addrCompare orders two pointers by address. Go pointers have no
// language-level ordering; the numeric comparison below is stable because
// the runtime does not move heap objects.
func addrCompare[T any](a, b *T) int {
	return cmp.Compare(uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(b)))
}
