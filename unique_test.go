// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nonnil_test

import (
	"testing"

	"code.hybscloud.com/nonnil"
	"code.hybscloud.com/nonnil/own"
)

func TestNewUnique(t *testing.T) {
	u := nonnil.NewUnique(42)
	if *u.Get() != 42 {
		t.Fatalf("*Get() = %d, want 42", *u.Get())
	}
}

func TestUniqueTakeRoundTrip(t *testing.T) {
	u := nonnil.NewUnique("hello")

	raw := u.Take()
	if raw.IsNil() {
		t.Fatal("extracted representation must not be the sentinel")
	}
	if *raw.Get() != "hello" {
		t.Fatalf("*Get() = %q, want %q", *raw.Get(), "hello")
	}

	// Re-wrapping the extracted resource preserves the value.
	u2 := nonnil.WrapUnique(raw)
	if *u2.Get() != "hello" {
		t.Fatalf("re-wrapped deref = %q, want %q", *u2.Get(), "hello")
	}
}

func TestWrapUniqueSentinelPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on the null sentinel")
		}
		if s, ok := r.(string); !ok || s != "nonnil: Unique cannot wrap the null sentinel" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	_ = nonnil.WrapUnique(own.Unique[int]{})
}

func TestTryUnique(t *testing.T) {
	opt := nonnil.TryUnique(own.Unique[int]{})
	if opt.IsSome() {
		t.Fatal("expected absent Option for the sentinel")
	}

	opt = nonnil.TryUnique(own.NewUnique(9))
	u, ok := opt.Get()
	if !ok {
		t.Fatal("expected present Option for a live handle")
	}
	if *u.Get() != 9 {
		t.Fatalf("*Get() = %d, want 9", *u.Get())
	}
}

func TestUniqueDeleter(t *testing.T) {
	dropped := 0
	x := 42
	u := nonnil.WrapUnique(own.NewUniqueWith(&x, func(*int) { dropped++ }))

	if u.Deleter() == nil {
		t.Fatal("expected an attached disposer")
	}

	raw := u.Take()
	if dropped != 0 {
		t.Fatalf("disposer ran %d times before Drop", dropped)
	}
	raw.Drop()
	if dropped != 1 {
		t.Fatalf("disposer ran %d times, want 1", dropped)
	}
}

func TestUniqueSetDeleter(t *testing.T) {
	first, second := 0, 0
	x := 1
	u := nonnil.WrapUnique(own.NewUniqueWith(&x, func(*int) { first++ }))

	u.SetDeleter(func(*int) { second++ })

	raw := u.Take()
	raw.Drop()
	if first != 0 {
		t.Fatal("replaced disposer must not run")
	}
	if second != 1 {
		t.Fatalf("second disposer ran %d times, want 1", second)
	}
}

func TestUniqueSwap(t *testing.T) {
	u1 := nonnil.NewUnique(10)
	u2 := nonnil.NewUnique(20)

	u1.Swap(u2)

	if *u1.Get() != 20 {
		t.Fatalf("*u1 = %d, want 20", *u1.Get())
	}
	if *u2.Get() != 10 {
		t.Fatalf("*u2 = %d, want 10", *u2.Get())
	}
}

func TestUniqueEqualityAndOrdering(t *testing.T) {
	u1 := nonnil.NewUnique(1)
	u2 := nonnil.NewUnique(2)

	if u1.Equal(u2) {
		t.Fatal("distinct allocations must not compare equal")
	}
	if !u1.Equal(u1) {
		t.Fatal("a handle must equal itself")
	}
	lt := u1.Compare(u2) < 0
	gt := u1.Compare(u2) > 0
	if lt == gt {
		t.Fatalf("expected exactly one ordering direction, got lt=%v gt=%v", lt, gt)
	}
}

func TestUniqueUseAfterTakePanics(t *testing.T) {
	u := nonnil.NewUnique(1)
	_ = u.Take()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on use after Take")
		}
	}()

	_ = u.Get()
}

func TestToShared(t *testing.T) {
	dropped := 0
	x := 42
	u := nonnil.WrapUnique(own.NewUniqueWith(&x, func(*int) { dropped++ }))

	s := nonnil.ToShared(u)
	if *s.Get() != 42 {
		t.Fatalf("*Get() = %d, want 42", *s.Get())
	}
	if s.UseCount() != 1 {
		t.Fatalf("UseCount() = %d, want 1", s.UseCount())
	}

	// The disposer survives the conversion and runs when the last
	// counted reference is released.
	c := s.Clone()
	ref := c.Take()
	ref.Release()
	if dropped != 0 {
		t.Fatal("disposer must not run while a reference survives")
	}
	last := s.Take()
	last.Release()
	if dropped != 1 {
		t.Fatalf("disposer ran %d times, want 1", dropped)
	}
}
