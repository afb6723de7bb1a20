// Copyright 2024 The cssopt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engines connects resolved preset configurations to
// minification engines.
package engines

import (
	"fmt"
	"sort"

	"github.com/nkls/cssopt/preset"
)

// Descriptor identifies an engine together with the resolved options
// it should run with. It is the hand-off object between configuration
// and the engine that consumes it.
type Descriptor struct {
	Name    string
	Options preset.Options
}

// Engine is an interface declaring a minification engine.
type Engine interface {
	Name() string
	Minify([]byte) ([]byte, error)
}

// Maker is a type of function which accepts resolved options and
// returns a new instance of the engine.
type Maker func(preset.Options) (Engine, error)

// makers stores builtin engine makers addressed by their names.
var makers = make(map[string]Maker)

// Register registers a new engine maker.
func Register(name string, maker Maker) {
	makers[name] = maker
}

// Names returns the names of registered engines in sorted order.
func Names() []string {
	names := make([]string, 0, len(makers))
	for name := range makers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Make creates a new engine from the descriptor.
// It returns an error if it can't find an engine maker with such name
// or if the descriptor options don't fit the engine.
func Make(d Descriptor) (Engine, error) {
	maker := makers[d.Name]
	if maker == nil {
		return nil, fmt.Errorf("engine %q not found", d.Name)
	}
	return maker(d.Options)
}

// Engines read only the options they consume and ignore the rest:
// unknown feature names pass through configuration untouched, so an
// engine must not reject them.

// boolOption reads a bool option. A nested options object counts as
// enabled, since presets express "enabled with options" as an object.
func boolOption(opts preset.Options, key string, def bool) (bool, error) {
	v, ok := opts[key]
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case bool:
		return x, nil
	case map[string]interface{}:
		return true, nil
	default:
		return false, fmt.Errorf("option %q: want bool or options object, got %T", key, v)
	}
}

// objectOption reads a nested options object. A bool true stands for
// an empty object, false and absence for nil.
func objectOption(opts preset.Options, key string) (map[string]interface{}, error) {
	v, ok := opts[key]
	if !ok {
		return nil, nil
	}
	switch x := v.(type) {
	case bool:
		if x {
			return map[string]interface{}{}, nil
		}
		return nil, nil
	case map[string]interface{}:
		return x, nil
	default:
		return nil, fmt.Errorf("option %q: want bool or options object, got %T", key, v)
	}
}

// intOption reads an integer from a nested options object, tolerating
// the numeric types YAML decoders produce.
func intOption(obj map[string]interface{}, key string, def int) (int, error) {
	v, ok := obj[key]
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		return int(x), nil
	default:
		return 0, fmt.Errorf("option %q: want number, got %T", key, v)
	}
}
