package input

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Action is a discrete command produced by a key or pointer event
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionStart
	ActionRestart
	ActionToggleMute
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:       "none",
	ActionUp:         "up",
	ActionDown:       "down",
	ActionLeft:       "left",
	ActionRight:      "right",
	ActionFire:       "fire",
	ActionStart:      "start",
	ActionRestart:    "restart",
	ActionToggleMute: "mute",
	ActionQuit:       "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Binding errors
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidKey    = errors.New("invalid key")
)

// ParseAction resolves an action name as written in the [keys] config section
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Bindings maps printable keys to actions; lookups are case-insensitive
type Bindings map[rune]Action

// DefaultBindings returns the stock WASD layout
func DefaultBindings() Bindings {
	return Bindings{
		'w': ActionUp,
		'a': ActionLeft,
		's': ActionDown,
		'd': ActionRight,
		' ': ActionFire,
		'r': ActionRestart,
		'm': ActionToggleMute,
		'q': ActionQuit,
	}
}

// ParseBindings overlays key → action name entries on the defaults.
// Binding a key to "none" removes it.
func ParseBindings(overrides map[string]string) (Bindings, error) {
	b := DefaultBindings()
	for keyStr, name := range overrides {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}
		if a == ActionNone {
			delete(b, r)
			continue
		}
		b[r] = a
	}
	return b, nil
}

// resolveRune converts a config key string to a lower-case rune
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[s]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: must be a single character or alias", ErrInvalidKey)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsPrint(r) {
		return 0, fmt.Errorf("%w: not printable", ErrInvalidKey)
	}
	return unicode.ToLower(r), nil
}
