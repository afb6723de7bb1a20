// Copyright 2024 The cssopt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preset

// `advanced` extends the default preset with transforms that need a
// whole-stylesheet view and can change selector identity.

func init() {
	o := defaultOptions()
	o["discardUnused"] = true
	o["mergeIdents"] = true
	o["reduceIdents"] = true
	o["zindex"] = true
	Register("advanced", o)
}
