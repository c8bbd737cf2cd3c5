// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own_test

import (
	"testing"

	"code.hybscloud.com/nonnil/own"
)

func TestUniqueZeroValueIsSentinel(t *testing.T) {
	var u own.Unique[int]
	if !u.IsNil() {
		t.Fatal("zero value must be the null sentinel")
	}
	if u.Get() != nil {
		t.Fatal("sentinel Get must be nil")
	}
}

func TestUniqueNew(t *testing.T) {
	u := own.NewUnique(42)
	if u.IsNil() {
		t.Fatal("fresh handle must not be the sentinel")
	}
	if *u.Get() != 42 {
		t.Fatalf("*Get() = %d, want 42", *u.Get())
	}
	if u.Deleter() != nil {
		t.Fatal("NewUnique must not attach a disposer")
	}
}

func TestUniqueWithNilPointer(t *testing.T) {
	u := own.NewUniqueWith[int](nil, func(*int) {})
	if !u.IsNil() {
		t.Fatal("wrapping nil must yield the sentinel")
	}
}

func TestUniqueRelease(t *testing.T) {
	dropped := 0
	x := 7
	u := own.NewUniqueWith(&x, func(*int) { dropped++ })

	p := u.Release()
	if p != &x {
		t.Fatalf("Release() = %p, want %p", p, &x)
	}
	if !u.IsNil() {
		t.Fatal("source must be the sentinel after Release")
	}
	if dropped != 0 {
		t.Fatal("Release must not invoke the disposer")
	}
	// The disposer stays attached after Release.
	if u.Deleter() == nil {
		t.Fatal("Release must keep the disposer")
	}
}

func TestUniqueDrop(t *testing.T) {
	dropped := 0
	x := 7
	u := own.NewUniqueWith(&x, func(p *int) {
		if p != &x {
			t.Errorf("disposer got %p, want %p", p, &x)
		}
		dropped++
	})

	u.Drop()
	if dropped != 1 {
		t.Fatalf("disposer ran %d times, want 1", dropped)
	}
	if !u.IsNil() {
		t.Fatal("source must be the sentinel after Drop")
	}

	// Dropping the sentinel is a no-op.
	u.Drop()
	if dropped != 1 {
		t.Fatalf("disposer ran %d times after double Drop, want 1", dropped)
	}
}

func TestUniqueMove(t *testing.T) {
	u := own.NewUnique("hello")
	v := u.Move()

	if !u.IsNil() {
		t.Fatal("source must be the sentinel after Move")
	}
	if v.IsNil() || *v.Get() != "hello" {
		t.Fatal("destination must own the original value")
	}
}

func TestUniqueSwap(t *testing.T) {
	a := own.NewUnique(1)
	b := own.NewUnique(2)

	a.Swap(&b)

	if *a.Get() != 2 || *b.Get() != 1 {
		t.Fatalf("after swap got %d, %d; want 2, 1", *a.Get(), *b.Get())
	}
}

func TestUniqueSetDeleter(t *testing.T) {
	first, second := 0, 0
	x := 1
	u := own.NewUniqueWith(&x, func(*int) { first++ })
	u.SetDeleter(func(*int) { second++ })

	u.Drop()
	if first != 0 || second != 1 {
		t.Fatalf("disposers ran (%d, %d), want (0, 1)", first, second)
	}
}
