// Copyright 2024 The cssopt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engines

// `tdewolff` minifies CSS with the tdewolff/minify library. It honors
// the precision of the `convertValues` feature and refuses
// configurations that disable `normalizeWhitespace`, because
// collapsing whitespace is inseparable from what it does.

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"

	"github.com/nkls/cssopt/preset"
)

func init() {
	Register("tdewolff", makeTdewolff)
}

type tdewolffEngine struct {
	m *minify.M
}

func makeTdewolff(opts preset.Options) (Engine, error) {
	ws, err := boolOption(opts, "normalizeWhitespace", true)
	if err != nil {
		return nil, err
	}
	if !ws {
		return nil, fmt.Errorf("engine tdewolff cannot keep whitespace (normalizeWhitespace: false)")
	}
	conv, err := objectOption(opts, "convertValues")
	if err != nil {
		return nil, err
	}
	precision, err := intOption(conv, "precision", 0)
	if err != nil {
		return nil, err
	}
	m := minify.New()
	m.Add("text/css", &css.Minifier{Precision: precision})
	return &tdewolffEngine{m: m}, nil
}

func (e *tdewolffEngine) Name() string { return "tdewolff" }

func (e *tdewolffEngine) Minify(in []byte) ([]byte, error) {
	return e.m.Bytes("text/css", in)
}
