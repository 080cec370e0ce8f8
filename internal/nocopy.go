// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package internal

// NoCopy is a sentinel embedded in structs that must not be copied by
// value once in use (handles, pool headers, silo chains). go vet's
// copylocks check flags any type embedding it that is passed or
// assigned by value.
type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}
