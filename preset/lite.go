// Copyright 2024 The cssopt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preset

// `lite` only collapses whitespace and drops comments and empty
// rules. Useful when the stylesheet must otherwise survive untouched.

func init() {
	Register("lite", Options{
		"discardComments":     map[string]interface{}{"removeAll": false},
		"discardEmpty":        true,
		"normalizeWhitespace": true,
	})
}
