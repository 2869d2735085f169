package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/parameter"
)

// IntentType discriminates what a terminal event means to the host
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentHold            // a held control was pressed or repeated
	IntentCommand         // a discrete command
	IntentResize
	IntentQuit
)

// Intent is the parsed meaning of one terminal event
type Intent struct {
	Type   IntentType
	Action Action
}

type hold struct {
	last    time.Time
	repeats int
}

// Machine tracks held controls from key presses
// Terminals report no key release, so a control stays held until its autorepeat stops:
// KeyHoldInitial after the first press, KeyHoldTimeout once repeats arrive
type Machine struct {
	table *KeyTable
	held  [actionCount]hold
	now   func() time.Time
}

// NewMachine creates a machine over kt, the defaults when nil
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{table: kt, now: time.Now}
}

// Process parses a terminal event
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventError:
		return Intent{Type: IntentQuit}
	}
	return Intent{}
}

func (m *Machine) processKey(key tcell.Key, r rune, mod tcell.ModMask) Intent {
	action, run := m.table.Lookup(key, r, mod)
	if action == ActionNone {
		return Intent{}
	}
	if !action.Held() {
		if action == ActionQuit {
			return Intent{Type: IntentQuit, Action: action}
		}
		return Intent{Type: IntentCommand, Action: action}
	}
	now := m.now()
	m.press(action, now)
	if run {
		m.press(ActionRun, now)
	}
	return Intent{Type: IntentHold, Action: action}
}

func (m *Machine) press(a Action, now time.Time) {
	h := &m.held[a]
	if m.active(h, now) {
		h.repeats++
	} else {
		h.repeats = 0
	}
	h.last = now
}

func (m *Machine) active(h *hold, now time.Time) bool {
	if h.last.IsZero() {
		return false
	}
	window := parameter.KeyHoldTimeout
	if h.repeats == 0 {
		window = parameter.KeyHoldInitial
	}
	return now.Sub(h.last) < window
}

// Held reports whether a is currently held
func (m *Machine) Held(a Action) bool {
	return a.Held() && m.active(&m.held[a], m.now())
}

// Controls samples the held state for this frame
func (m *Machine) Controls() entity.Input {
	now := m.now()
	on := func(a Action) bool { return m.active(&m.held[a], now) }
	in := entity.Input{
		Left:   on(ActionLeft),
		Right:  on(ActionRight),
		Up:     on(ActionUp),
		Down:   on(ActionDown),
		Jump:   on(ActionJump),
		Run:    on(ActionRun),
		Attack: on(ActionAttack),
		Strike: on(ActionStrike),
	}
	// Opposite directions: the most recent press wins
	if in.Left && in.Right {
		if m.held[ActionLeft].last.After(m.held[ActionRight].last) {
			in.Right = false
		} else {
			in.Left = false
		}
	}
	return in
}

// Release drops every held control, used on scene changes
func (m *Machine) Release() {
	m.held = [actionCount]hold{}
}
