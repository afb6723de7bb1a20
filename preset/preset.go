// Copyright 2024 The cssopt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preset implements named bundles of minification feature
// toggles and their resolution against caller overrides.
package preset

import (
	"fmt"
	"sort"
)

// Options maps feature names to toggle values. A value is either a
// bool enabling or disabling the feature, or a nested options object
// (map[string]interface{}) configuring it.
type Options map[string]interface{}

// presets stores registered presets addressed by their names.
var presets = make(map[string]Options)

// Register registers a preset under the given name.
// Presets are wired in from init functions, so registering the same
// name twice is a programmer error and panics.
func Register(name string, defaults Options) {
	if _, exists := presets[name]; exists {
		panic("preset: duplicate registration of " + name)
	}
	presets[name] = defaults
}

// Names returns the names of registered presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve merges overrides into the defaults of the named preset and
// returns the result. A key present in overrides wins over the preset
// default for that key, replacing it entirely: a bool override
// replaces a nested-object default and vice versa, nothing is merged
// deeply. Keys absent from overrides keep the preset's default value.
// Override keys the preset doesn't know pass through into the result
// unchanged.
//
// The result is built fresh on every call and shares no maps with the
// registry or with the overrides, so the caller owns it outright.
//
// It returns an error if no preset with such name is registered.
func Resolve(name string, overrides Options) (Options, error) {
	defaults, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("preset %q not found", name)
	}
	resolved := make(Options, len(defaults)+len(overrides))
	for k, v := range defaults {
		resolved[k] = copyValue(v)
	}
	for k, v := range overrides {
		resolved[k] = copyValue(v)
	}
	return resolved, nil
}

// copyValue copies nested option objects so that resolved
// configurations never alias registry or caller state.
func copyValue(v interface{}) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return v
	}
	c := make(map[string]interface{}, len(m))
	for k, mv := range m {
		c[k] = copyValue(mv)
	}
	return c
}
