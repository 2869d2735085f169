package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/xochi/entity"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestMachine(kt *KeyTable) (*Machine, *fakeClock) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	m := NewMachine(kt)
	m.now = clk.now
	return m, clk
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestProcessIntents(t *testing.T) {
	m, _ := newTestMachine(nil)

	tests := []struct {
		name string
		ev   tcell.Event
		want Intent
	}{
		{"arrow holds", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Intent{IntentHold, ActionLeft}},
		{"space jumps", runeKey(' '), Intent{IntentHold, ActionJump}},
		{"enter confirms", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Intent{IntentCommand, ActionConfirm}},
		{"esc pauses", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{IntentCommand, ActionPause}},
		{"n starts", runeKey('n'), Intent{IntentCommand, ActionNewGame}},
		{"m mutes", runeKey('m'), Intent{IntentCommand, ActionToggleMute}},
		{"v strikes", runeKey('v'), Intent{IntentHold, ActionStrike}},
		{"g cycles difficulty", runeKey('g'), Intent{IntentCommand, ActionDifficulty}},
		{"u customizes", runeKey('u'), Intent{IntentCommand, ActionCustomize}},
		{"digit selects world", runeKey('4'), Intent{IntentCommand, ActionWorld4}},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{IntentQuit, ActionQuit}},
		{"unbound ignored", runeKey('%'), Intent{}},
		{"resize", tcell.NewEventResize(80, 24), Intent{Type: IntentResize}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Process(tt.ev))
		})
	}
}

func TestHoldTimeouts(t *testing.T) {
	m, clk := newTestMachine(nil)

	m.Process(runeKey('d'))
	assert.True(t, m.Controls().Right)

	// First press survives the autorepeat delay
	clk.advance(400 * time.Millisecond)
	assert.True(t, m.Controls().Right)

	// Repeats shrink the window
	m.Process(runeKey('d'))
	clk.advance(100 * time.Millisecond)
	assert.True(t, m.Held(ActionRight))
	clk.advance(50 * time.Millisecond)
	assert.False(t, m.Held(ActionRight), "released once repeats stop")

	// A fresh press after release gets the initial window again
	m.Process(runeKey('d'))
	clk.advance(300 * time.Millisecond)
	assert.True(t, m.Held(ActionRight))
}

func TestUppercaseImpliesRun(t *testing.T) {
	m, _ := newTestMachine(nil)

	assert.Equal(t, Intent{IntentHold, ActionLeft}, m.Process(runeKey('A')))
	assert.Equal(t, entity.Input{Left: true, Run: true}, m.Controls())

	m.Release()
	m.Process(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift))
	assert.Equal(t, entity.Input{Right: true, Run: true}, m.Controls())

	m.Release()
	assert.Equal(t, Intent{IntentCommand, ActionNewGame}, m.Process(runeKey('N')), "commands take no run")
	assert.Equal(t, entity.Input{}, m.Controls())
}

func TestOppositeDirectionsLatestWins(t *testing.T) {
	m, clk := newTestMachine(nil)

	m.Process(runeKey('a'))
	clk.advance(10 * time.Millisecond)
	m.Process(runeKey('d'))
	in := m.Controls()
	assert.True(t, in.Right)
	assert.False(t, in.Left)
}

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig([]byte(`
[keys]
jump = ["space", "Up", "backslash"]
quit = ["Ctrl-X"]
none = ["q"]
`))
	require.NoError(t, err)
	assert.Equal(t, ActionJump, kt.Runes[' '])
	assert.Equal(t, ActionJump, kt.Runes['\\'])
	assert.Equal(t, ActionJump, kt.Keys[tcell.KeyUp])
	assert.Equal(t, ActionQuit, kt.Keys[tcell.KeyCtrlX])

	base := DefaultKeyTable()
	base.Merge(kt)
	_, bound := base.Runes['q']
	assert.False(t, bound, "none unbinds")
	assert.Equal(t, ActionJump, base.Keys[tcell.KeyUp])
	assert.Equal(t, ActionLeft, base.Runes['a'], "untouched bindings survive")
}

func TestLoadKeyConfigErrors(t *testing.T) {
	_, err := LoadKeyConfig([]byte("[keys]\nfly = [\"f\"]"))
	assert.ErrorContains(t, err, "unknown action")

	_, err = LoadKeyConfig([]byte("[keys]\njump = [\"Hyperspace\"]"))
	assert.ErrorContains(t, err, "unknown key")

	_, err = LoadKeyConfig([]byte("[mouse]\nleft = 1"))
	assert.ErrorContains(t, err, "unknown section")

	_, err = LoadKeyConfig([]byte("[keys"))
	assert.ErrorContains(t, err, "keymap parse")
}

func TestLoadKeyTableDefaults(t *testing.T) {
	kt, err := LoadKeyTable("")
	require.NoError(t, err)
	assert.Equal(t, DefaultKeyTable(), kt)

	_, err = LoadKeyTable("/nonexistent/keys.toml")
	assert.Error(t, err)
}

func TestActionNames(t *testing.T) {
	for a := ActionNone; a < actionCount; a++ {
		got, ok := ParseAction(a.String())
		require.True(t, ok)
		assert.Equal(t, a, got)
	}
	assert.True(t, ActionAttack.Held())
	assert.True(t, ActionStrike.Held())
	assert.False(t, ActionPause.Held())
	assert.False(t, ActionWorld1.Held())
}

func TestWorldActions(t *testing.T) {
	for w := 1; w <= 6; w++ {
		got, ok := (ActionWorld1 + Action(w-1)).World()
		require.True(t, ok)
		assert.Equal(t, w, got)
	}
	_, ok := ActionConfirm.World()
	assert.False(t, ok)
}

func TestStrikeControl(t *testing.T) {
	m, _ := newTestMachine(nil)
	m.Process(runeKey('e'))
	in := m.Controls()
	assert.True(t, in.Strike)
	assert.False(t, in.Attack)
}
