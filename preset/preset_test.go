// Copyright 2024 The cssopt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveDefault(t *testing.T) {
	overrides := Options{
		"discardComments":  map[string]interface{}{"removeAll": true},
		"minifyFontValues": true,
		"minifyGradients":  true,
	}
	resolved, err := Resolve("default", overrides)
	if err != nil {
		t.Fatalf("%s", err)
	}
	// Overrides win.
	if diff := cmp.Diff(map[string]interface{}{"removeAll": true}, resolved["discardComments"]); diff != "" {
		t.Errorf("discardComments mismatch (-want +got):\n%s", diff)
	}
	if resolved["minifyFontValues"] != true {
		t.Errorf("minifyFontValues: expected true, got %v", resolved["minifyFontValues"])
	}
	if resolved["minifyGradients"] != true {
		t.Errorf("minifyGradients: expected true, got %v", resolved["minifyGradients"])
	}
	// Keys absent from overrides keep defaults.
	if resolved["mergeLonghand"] != true {
		t.Errorf("mergeLonghand: expected default true, got %v", resolved["mergeLonghand"])
	}
	if diff := cmp.Diff(map[string]interface{}{"precision": 5}, resolved["convertValues"]); diff != "" {
		t.Errorf("convertValues mismatch (-want +got):\n%s", diff)
	}
	if len(resolved) != len(defaultOptions()) {
		t.Errorf("expected %d features, got %d", len(defaultOptions()), len(resolved))
	}
}

func TestResolveOverrideWins(t *testing.T) {
	var tests = []struct {
		name      string
		overrides Options
		key       string
		want      interface{}
	}{
		{"bool replaces object", Options{"discardComments": false}, "discardComments", false},
		{"object replaces bool", Options{"mergeRules": map[string]interface{}{"strict": true}}, "mergeRules",
			map[string]interface{}{"strict": true}},
		{"unknown key passes through", Options{"someFutureFeature": true}, "someFutureFeature", true},
		{"disable replaces enable", Options{"minifySelectors": false}, "minifySelectors", false},
	}
	for _, v := range tests {
		resolved, err := Resolve("default", v.overrides)
		if err != nil {
			t.Fatalf("%s: %s", v.name, err)
		}
		if diff := cmp.Diff(v.want, resolved[v.key]); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", v.name, diff)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	overrides := Options{
		"discardComments": map[string]interface{}{"removeAll": true},
		"newThing":        map[string]interface{}{"level": 2},
	}
	a, err := Resolve("default", overrides)
	if err != nil {
		t.Fatalf("%s", err)
	}
	b, err := Resolve("default", overrides)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated resolution differs (-first +second):\n%s", diff)
	}
}

func TestResolveCopies(t *testing.T) {
	resolved, err := Resolve("default", nil)
	if err != nil {
		t.Fatalf("%s", err)
	}
	// Mutating the result must not leak into the registry.
	resolved["discardComments"].(map[string]interface{})["removeAll"] = true
	resolved["mergeLonghand"] = false

	again, err := Resolve("default", nil)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if again["discardComments"].(map[string]interface{})["removeAll"] != false {
		t.Errorf("registry default mutated through resolved configuration")
	}
	if again["mergeLonghand"] != true {
		t.Errorf("registry default mutated through resolved configuration")
	}
}

func TestResolveUnknownPreset(t *testing.T) {
	_, err := Resolve("nonexistent", nil)
	if err == nil {
		t.Errorf("expected error for unknown preset, got nil")
	}
}

func TestLitePreset(t *testing.T) {
	resolved, err := Resolve("lite", nil)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(resolved) != 3 {
		t.Errorf("lite: expected 3 features, got %d: %v", len(resolved), resolved)
	}
	if _, ok := resolved["mergeLonghand"]; ok {
		t.Errorf("lite must not enable mergeLonghand")
	}
}

func TestAdvancedPreset(t *testing.T) {
	resolved, err := Resolve("advanced", nil)
	if err != nil {
		t.Fatalf("%s", err)
	}
	for _, key := range []string{"zindex", "reduceIdents", "mergeLonghand"} {
		if resolved[key] != true {
			t.Errorf("advanced: expected %s enabled, got %v", key, resolved[key])
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"advanced", "default", "lite"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
}
