// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build nonnil_unchecked

package nonnil

// checked disables invariant assertions: the invariant is assumed and
// violating it is undefined behavior.
const checked = false
