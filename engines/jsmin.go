// Copyright 2024 The cssopt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engines

// `jsmin` minifies JavaScript.

import (
	"github.com/dchest/jsmin"

	"github.com/nkls/cssopt/preset"
)

func init() {
	Register("jsmin", func(opts preset.Options) (Engine, error) {
		return JSMin(0), nil
	})
}

type JSMin int

func (e JSMin) Name() string { return "jsmin" }

func (e JSMin) Minify(in []byte) ([]byte, error) {
	return jsmin.Minify(in)
}
