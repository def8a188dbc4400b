package appstate

import (
	"unicode"

	"github.com/example/fractalexplorer/internal/interact"
	"github.com/example/fractalexplorer/internal/render"
	"github.com/example/fractalexplorer/internal/viewport"
	"golang.org/x/mobile/event/key"
)

// KeyShortcut represents a keyboard shortcut. Either Rune or Code is set.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// Keymap maps shortcuts to Session.Shortcut names.
type Keymap map[KeyShortcut]string

func (m Keymap) register(name string, keys KeyboardShortcuts) {
	for _, sc := range keys.KeyboardShortcuts() {
		m[sc] = name
	}
}

// DefaultKeymap returns the explorer key bindings.
func DefaultKeymap() Keymap {
	m := Keymap{}
	m.register(interact.ZoomIn.String(), shortcutList{{Rune: '+'}, {Rune: '='}, {Code: key.CodeKeypadPlusSign}})
	m.register(interact.ZoomOut.String(), shortcutList{{Rune: '-'}, {Code: key.CodeKeypadHyphenMinus}})
	m.register(interact.PanLeft.String(), shortcutList{{Code: key.CodeLeftArrow}})
	m.register(interact.PanRight.String(), shortcutList{{Code: key.CodeRightArrow}})
	m.register(interact.PanUp.String(), shortcutList{{Code: key.CodeUpArrow}})
	m.register(interact.PanDown.String(), shortcutList{{Code: key.CodeDownArrow}})
	m.register(interact.TogglePanel.String(), shortcutList{{Code: key.CodeTab}})
	m.register(ShortcutReset, shortcutList{{Rune: 'r'}})
	m.register(ShortcutSave, shortcutList{{Rune: 's', Modifiers: key.ModControl}})
	m.register(ShortcutCopy, shortcutList{{Rune: 'c', Modifiers: key.ModControl}})
	m.register(ShortcutCopyCoords, shortcutList{{Rune: 'c', Modifiers: key.ModControl | key.ModShift}})
	m.register(ShortcutQuit, shortcutList{{Rune: 'q'}, {Code: key.CodeEscape}})
	for i, v := range viewport.Variants {
		m.register(render.VariantAction(v), shortcutList{{Rune: '1' + rune(i)}})
	}
	for i := range viewport.Presets {
		m.register(render.PresetAction(i+1), shortcutList{{Rune: '1' + rune(i), Modifiers: key.ModControl}})
	}
	return m
}

// Lookup resolves a key press. Runes are matched case-insensitively; Shift
// is ignored for symbols so '+' matches whether or not it needed Shift.
func (m Keymap) Lookup(r rune, code key.Code, mods key.Modifiers) (string, bool) {
	mods &= key.ModShift | key.ModControl | key.ModAlt
	if r > 0 {
		lr := unicode.ToLower(r)
		rmods := mods
		if !unicode.IsLetter(lr) {
			rmods &^= key.ModShift
		}
		if name, ok := m[KeyShortcut{Rune: lr, Modifiers: rmods}]; ok {
			return name, true
		}
	}
	if code != key.CodeUnknown {
		if name, ok := m[KeyShortcut{Code: code, Modifiers: mods}]; ok {
			return name, true
		}
	}
	return "", false
}
