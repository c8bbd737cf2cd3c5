// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nonnil

// Option represents a value that may be absent. It is the result type of
// the Try constructors, which report a null input as [None] instead of
// ever constructing an invalid wrapper.
type Option[T any] struct {
	val T
	ok  bool
}

// Some creates a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, ok: true}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or zero and false when absent.
func (o Option[T]) Get() (T, bool) {
	if !o.ok {
		var zero T
		return zero, false
	}
	return o.val, true
}

// Value returns the value. Panics when the Option is absent.
func (o Option[T]) Value() T {
	if !o.ok {
		panic("nonnil: Value on an absent Option")
	}
	return o.val
}

// OrElse returns the value, or def when absent.
func (o Option[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.val
}
