// Copyright 2024 The cssopt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engines

// `cssmin` minifies CSS. It has no tunables: its fixed transform set
// covers whitespace, comments and color shortening, so it accepts any
// resolved configuration as-is.

import (
	"github.com/dchest/cssmin"

	"github.com/nkls/cssopt/preset"
)

func init() {
	Register("cssmin", func(opts preset.Options) (Engine, error) {
		return CSSMin(0), nil
	})
}

type CSSMin int

func (e CSSMin) Name() string { return "cssmin" }

func (e CSSMin) Minify(in []byte) ([]byte, error) {
	return cssmin.Minify(in), nil
}
