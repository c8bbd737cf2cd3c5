// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nonnil

import "reflect"

// Invariant assertions. In checked builds (the default) a violated
// invariant panics deterministically at the violation site. In unchecked
// builds (-tags nonnil_unchecked) the checked constant is false, the
// branches below are dead code, and the invariant is merely assumed;
// violating it is undefined behavior.

// assume panics with msg when ok is false, in checked builds only.
func assume(ok bool, msg string) {
	if checked && !ok {
		panic(msg)
	}
}

// isNilFunc reports whether f, which must be of function kind, is the nil
// callable sentinel. Reflection runs at construction time only, never on
// the invocation path.
func isNilFunc(f any) bool {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func {
		panic("nonnil: callable wrapper requires a function type")
	}
	return v.IsNil()
}
