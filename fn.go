// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nonnil

// Fn is the non-empty wrapper for copyable callable values. F must be a
// function type; the nil func is its empty sentinel. Emptiness is
// validated once, by reflection, at construction — never on the
// invocation path. Call sites invoke through Get with no emptiness
// branch:
//
//	double := nonnil.NewFn(func(x int) int { return 2 * x })
//	double.Get()(21) // 42
//
// Fn is a plain value type: assignment copies the stored callable and the
// source stays valid, so move is copy.
type Fn[F any] struct {
	fn   F
	live bool
}

// NewFn wraps f. The callable must not be the nil sentinel: checked
// builds panic, unchecked builds assume. A non-function F always panics;
// it is a misuse of the type parameter, not an invariant violation.
func NewFn[F any](f F) Fn[F] {
	assume(!isNilFunc(f), "nonnil: Fn cannot wrap an empty callable")
	return Fn[F]{fn: f, live: true}
}

// TryFn wraps f if it is not the nil sentinel, reporting the sentinel as
// an absent [Option].
func TryFn[F any](f F) Option[Fn[F]] {
	if isNilFunc(f) {
		return None[Fn[F]]()
	}
	return Some(Fn[F]{fn: f, live: true})
}

// Get returns the stored callable for invocation. Guaranteed non-empty
// by the invariant: the emptiness check was paid once at construction,
// so call sites carry no branch.
func (n Fn[F]) Get() F {
	assume(n.live, "nonnil: empty Fn (zero value or already taken)")
	return n.fn
}

// Swap exchanges the stored callables. Both wrappers remain non-empty.
func (n *Fn[F]) Swap(o *Fn[F]) {
	n.fn, o.fn = o.fn, n.fn
	n.live, o.live = o.live, n.live
}

// Take extracts the stored callable, consuming the wrapper. The source
// is emptied; using it again is undefined behavior, caught by checked
// builds.
func (n *Fn[F]) Take() F {
	assume(n.live, "nonnil: Take on an empty Fn")
	fn := n.fn
	var zero F
	n.fn = zero
	n.live = false
	return fn
}
