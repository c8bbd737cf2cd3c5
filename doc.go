// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package nonnil provides invariant-carrying wrappers that are never nil
// and never empty.
//
// A wrapper validates its value once, at construction, against the
// representation's null sentinel. From then on the invariant is assumed:
// accessors hand the value out with no nil branch, so null checks live at
// a single auditable construction point instead of at every use site.
//
// # Design Philosophy
//
// nonnil provides:
//   - Validate-once construction with a single fatal failure mode
//   - Ownership-category-specific wrapper types instead of runtime gating
//   - One sanctioned consuming exit per wrapper: Take
//
// # Ownership Categories
//
// The generic non-null handle is split into three types, one per
// ownership category, each exposing only the operations valid for it:
//
//   - [Ptr]: no ownership, wraps a bare *T. Copyable; move is copy.
//   - [Unique]: exclusive ownership, wraps an own.Unique. Copy and
//     implicit move are unavailable; Take is the only transfer.
//   - [Shared]: reference-counted, wraps an own.Shared. Clone is the
//     counted copy; plain assignment is an uncounted alias and always
//     leaves the source valid.
//
// Callable values get the same treatment over Go's two callable-storage
// shapes:
//
//   - [Fn]: copyable non-empty callable wrapper over a func value
//   - [FnOnce]: move-only non-empty callable wrapper, one-shot Take
//
// # Construction and Validation
//
// Constructors [NewPtr], [WrapUnique], [WrapShared], [NewFn] and
// [NewFnOnce] validate the input against the sentinel and panic on
// violation (checked builds). Factories [NewUnique] and [NewShared]
// allocate a fresh value and cannot violate the invariant.
//
// Fallible promotion of a possibly-null value goes through [TryPtr],
// [TryUnique], [TryShared], [TryFn] and [TryFnOnce], which report the
// absent case as [Option] instead of ever constructing an invalid
// wrapper.
//
// # Checked and Unchecked Builds
//
// By default every constructor and accessor asserts the invariant and
// panics with a "nonnil:" message on violation. Building with
//
//	-tags nonnil_unchecked
//
// compiles the assertions away: the invariant becomes an unchecked
// assumption and violating it is undefined behavior. The cost of the
// check is paid once at construction in checked builds and never at use
// sites in unchecked builds.
//
// # Consuming Extraction
//
// Take extracts the owned representation and empties the wrapper. A taken
// wrapper must not be used again except to go out of scope; checked
// builds detect reuse, unchecked builds assume it never happens. Take is
// the only way to move ownership out of a [Unique] handle or a [FnOnce]
// wrapper:
//
//	u := nonnil.NewUnique("hello")
//	raw := u.Take()        // own.Unique[string], u is now consumed
//	u2 := nonnil.WrapUnique(raw)
//
// [FnOnce.TryTake] is the non-panicking probe for the one-shot exit.
//
// # Ownership Identity
//
// [Shared] handles carry owner-based identity distinct from pointee
// equality: [OwnerEqual], [OwnerBefore] and [Shared.OwnerHash] operate on
// the allocation group, so two handles over one allocation compare equal
// even through a differently-typed alias of that allocation.
//
// # Comparison Against Nil
//
// There is none. No operation in the package accepts a nil sentinel, so
// "wrapper == nil" is unrepresentable rather than a runtime branch that
// always reports false. Compare wrappers against wrappers, or against a
// bare pointer through Get.
//
// # Example
//
//	x := 42
//	p := nonnil.NewPtr(&x)
//	_ = *p.Get() // 42, no nil branch
//
//	double := nonnil.NewFn(func(x int) int { return 2 * x })
//	_ = double.Get()(21) // 42, no emptiness branch
package nonnil
