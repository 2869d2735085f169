package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	Keys map[tcell.Key]Action

	// Printable runes; an uppercase rune bound only in lowercase also holds run
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: arrows or WASD/HJKL to move, space to jump
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyEnter:  ActionConfirm,
			tcell.KeyEscape: ActionPause,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyCtrlS:  ActionToggleMute,
		},
		Runes: map[rune]Action{
			'a': ActionLeft,
			'd': ActionRight,
			'w': ActionUp,
			's': ActionDown,
			'h': ActionLeft,
			'l': ActionRight,
			'k': ActionUp,
			'j': ActionDown,
			' ': ActionJump,
			'z': ActionJump,
			'x': ActionRun,
			'f': ActionAttack,
			'v': ActionStrike,
			'e': ActionStrike,
			'p': ActionPause,
			'n': ActionNewGame,
			'c': ActionContinue,
			'm': ActionToggleMute,
			'q': ActionQuit,
			'g': ActionDifficulty,
			'u': ActionCustomize,
			'r': ActionNextColor,
			'o': ActionNextAccessory,
			'1': ActionWorld1,
			'2': ActionWorld2,
			'3': ActionWorld3,
			'4': ActionWorld4,
			'5': ActionWorld5,
			'6': ActionWorld6,
		},
	}
}

// Lookup resolves a key event; run reports an implied run modifier from Shift
func (kt *KeyTable) Lookup(key tcell.Key, r rune, mod tcell.ModMask) (a Action, run bool) {
	if key != tcell.KeyRune {
		a = kt.Keys[key]
		return a, mod&tcell.ModShift != 0 && a.Held()
	}
	if a, ok := kt.Runes[r]; ok {
		return a, false
	}
	if r >= 'A' && r <= 'Z' {
		a = kt.Runes[r+('a'-'A')]
		return a, a.Held()
	}
	return ActionNone, false
}

// Merge overlays o onto kt; ActionNone entries unbind
func (kt *KeyTable) Merge(o *KeyTable) {
	if o == nil {
		return
	}
	for k, a := range o.Keys {
		if a == ActionNone {
			delete(kt.Keys, k)
			continue
		}
		kt.Keys[k] = a
	}
	for r, a := range o.Runes {
		if a == ActionNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = a
	}
}
