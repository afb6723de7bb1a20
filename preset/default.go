// Copyright 2024 The cssopt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preset

// `default` is the standard transform set: optimizations that are
// safe for any stylesheet.

func init() {
	Register("default", defaultOptions())
}

// defaultOptions returns the feature set of the default preset.
// The advanced preset builds on top of it.
func defaultOptions() Options {
	return Options{
		"discardComments":          map[string]interface{}{"removeAll": false},
		"discardDuplicates":        true,
		"discardEmpty":             true,
		"discardOverridden":        true,
		"convertValues":            map[string]interface{}{"precision": 5},
		"mergeLonghand":            true,
		"mergeRules":               true,
		"minifyFontValues":         true,
		"minifyGradients":          true,
		"minifyParams":             true,
		"minifySelectors":          true,
		"normalizeCharset":         true,
		"normalizeDisplayValues":   true,
		"normalizePositions":       true,
		"normalizeRepeatStyle":     true,
		"normalizeString":          true,
		"normalizeTimingFunctions": true,
		"normalizeUnicode":         true,
		"normalizeUrl":             true,
		"normalizeWhitespace":      true,
		"orderedValues":            true,
		"reduceInitial":            true,
		"reduceTransforms":         true,
		"uniqueSelectors":          true,
	}
}
