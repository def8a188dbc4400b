package appstate

import (
	"testing"

	"golang.org/x/mobile/event/key"
)

func TestKeymapLookup(t *testing.T) {
	m := DefaultKeymap()
	cases := []struct {
		r    rune
		code key.Code
		mods key.Modifiers
		want string
	}{
		{'+', key.CodeEqualSign, key.ModShift, "zoom-in"},
		{'=', key.CodeEqualSign, 0, "zoom-in"},
		{'-', key.CodeHyphenMinus, 0, "zoom-out"},
		{-1, key.CodeLeftArrow, 0, "pan-left"},
		{-1, key.CodeDownArrow, 0, "pan-down"},
		{'\t', key.CodeTab, 0, "toggle-panel"},
		{'R', key.CodeR, 0, "reset"},
		{'2', key.Code2, 0, "variant-julia"},
		{'4', key.Code4, key.ModControl, "preset-4"},
		{'s', key.CodeS, key.ModControl, "save"},
		{'c', key.CodeC, key.ModControl, "copy"},
		{'C', key.CodeC, key.ModControl | key.ModShift, "copy-coords"},
		{-1, key.CodeEscape, 0, "quit"},
		{'q', key.CodeQ, 0, "quit"},
	}
	for _, tc := range cases {
		got, ok := m.Lookup(tc.r, tc.code, tc.mods)
		if !ok || got != tc.want {
			t.Errorf("Lookup(%q, %v, %v) = %q, %v; want %q", tc.r, tc.code, tc.mods, got, ok, tc.want)
		}
	}
	if got, ok := m.Lookup('x', key.CodeX, 0); ok {
		t.Errorf("unexpected binding for x: %q", got)
	}
	if got, ok := m.Lookup('c', key.CodeC, 0); ok {
		t.Errorf("plain c should not copy: %q", got)
	}
}
