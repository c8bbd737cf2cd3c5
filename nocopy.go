// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nonnil

// noCopy makes the embedding type flag copies under go vet's copylocks
// check. It is the static gate removing copy and implicit move from the
// move-only wrapper types; Take is their only ownership transfer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
