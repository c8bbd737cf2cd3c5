// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nonnil

// FnOnce is the non-empty wrapper for move-only callable values. It has
// the same contract as [Fn] with copy removed: the struct is flagged by
// go vet on copy and every constructor returns a pointer. Implicit move
// is unavailable for the same reason as [Unique] — it would leave the
// source empty — so the one-shot [FnOnce.Take] is the only sanctioned
// ownership transfer.
type FnOnce[F any] struct {
	noCopy noCopy
	fn     F
	live   bool
}

// NewFnOnce wraps f. The callable must not be the nil sentinel: checked
// builds panic, unchecked builds assume. A non-function F always panics.
func NewFnOnce[F any](f F) *FnOnce[F] {
	assume(!isNilFunc(f), "nonnil: FnOnce cannot wrap an empty callable")
	return &FnOnce[F]{fn: f, live: true}
}

// TryFnOnce wraps f if it is not the nil sentinel, reporting the
// sentinel as an absent [Option].
func TryFnOnce[F any](f F) Option[*FnOnce[F]] {
	if isNilFunc(f) {
		return None[*FnOnce[F]]()
	}
	return Some(&FnOnce[F]{fn: f, live: true})
}

// Get borrows the stored callable for invocation without transferring
// ownership. Guaranteed non-empty by the invariant; no emptiness branch.
func (n *FnOnce[F]) Get() F {
	assume(n.live, "nonnil: empty FnOnce (zero value or already taken)")
	return n.fn
}

// Swap exchanges the stored callables. Both wrappers remain non-empty.
func (n *FnOnce[F]) Swap(o *FnOnce[F]) {
	n.fn, o.fn = o.fn, n.fn
	n.live, o.live = o.live, n.live
}

// Take extracts the stored callable, consuming the wrapper. Taking twice
// is undefined behavior, caught by checked builds; use
// [FnOnce.TryTake] to probe instead of panicking.
func (n *FnOnce[F]) Take() F {
	assume(n.live, "nonnil: Take on an empty FnOnce")
	fn := n.fn
	var zero F
	n.fn = zero
	n.live = false
	return fn
}

// TryTake attempts to extract the stored callable. Returns the callable
// and true on the first call, or zero and false once the wrapper has
// been consumed.
func (n *FnOnce[F]) TryTake() (F, bool) {
	if !n.live {
		var zero F
		return zero, false
	}
	fn := n.fn
	var zero F
	n.fn = zero
	n.live = false
	return fn, true
}
