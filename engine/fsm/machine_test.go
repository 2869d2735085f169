package fsm

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/xochi/event"
)

type recorder struct {
	log     []string
	emitted []*EmitEventArgs
	allow   bool
}

const testGraph = `
initial = "Idle"

[states.Idle]
on_enter = [{ action = "Record", message = "enter Idle" }]
on_exit = [{ action = "Record", message = "exit Idle" }]
transitions = [
    { trigger = "EventNewGame", target = "Run", guard = "Allowed" },
]

[states.Active]
on_enter = [{ action = "Record", message = "enter Active" }]
on_exit = [{ action = "Record", message = "exit Active" }]
transitions = [
    { trigger = "EventGameOver", target = "Idle" },
]

[states.Run]
parent = "Active"
on_enter = [
    { action = "Record", message = "enter Run" },
    { action = "EmitEvent", event = "EventLevelStart", payload = { level = 4 } },
]
on_exit = [{ action = "Record", message = "exit Run" }]
transitions = [
    { trigger = "EventPause", target = "Hold" },
    { trigger = "Tick", target = "Hold", guard = "StateTimeExceeds", guard_args = { ms = 100 } },
]

[states.Hold]
parent = "Active"
on_enter = [{ action = "Record", message = "enter Hold" }]
on_exit = [{ action = "Record", message = "exit Hold" }]
transitions = [
    { trigger = "EventResume", target = "Run" },
]
`

func newTestMachine(t *testing.T) (*Machine[*recorder], *recorder) {
	t.Helper()
	m := NewMachine[*recorder]()
	m.RegisterAction("Record", func(r *recorder, args any) {
		r.log = append(r.log, args.(*LogArgs).Message)
	})
	m.RegisterAction("EmitEvent", func(r *recorder, args any) {
		r.emitted = append(r.emitted, args.(*EmitEventArgs))
	})
	m.RegisterGuard("Allowed", func(r *recorder) bool { return r.allow })
	require.NoError(t, m.LoadConfig([]byte(testGraph)))
	return m, &recorder{}
}

func TestMachineLoadResolvesStates(t *testing.T) {
	m, _ := newTestMachine(t)
	for _, name := range []string{"Root", "Idle", "Active", "Run", "Hold"} {
		_, ok := m.GetStateID(name)
		assert.True(t, ok, name)
	}
	id, _ := m.GetStateID("Idle")
	assert.Equal(t, id, m.InitialStateID)
}

func TestMachineGuardBlocksTransition(t *testing.T) {
	m, r := newTestMachine(t)
	require.NoError(t, m.Init(r))
	assert.Equal(t, "Idle", m.CurrentState())

	assert.False(t, m.HandleEvent(r, event.EventNewGame))
	assert.Equal(t, "Idle", m.CurrentState())

	r.allow = true
	assert.True(t, m.HandleEvent(r, event.EventNewGame))
	assert.Equal(t, "Run", m.CurrentState())
	assert.True(t, m.IsIn("Active"))
}

func TestMachineLCAEnterExitOrder(t *testing.T) {
	m, r := newTestMachine(t)
	r.allow = true
	require.NoError(t, m.Init(r))
	m.HandleEvent(r, event.EventNewGame)
	m.HandleEvent(r, event.EventPause)
	m.HandleEvent(r, event.EventGameOver) // handled by parent Active

	assert.Equal(t, []string{
		"enter Idle",
		"exit Idle", "enter Active", "enter Run",
		"exit Run", "enter Hold",
		"exit Hold", "exit Active", "enter Idle",
	}, r.log)
	assert.Equal(t, "Idle", m.CurrentState())
}

func TestMachineEmitEventPayload(t *testing.T) {
	m, r := newTestMachine(t)
	r.allow = true
	require.NoError(t, m.Init(r))
	m.HandleEvent(r, event.EventNewGame)

	require.Len(t, r.emitted, 1)
	assert.Equal(t, event.EventLevelStart, r.emitted[0].Type)
	assert.Equal(t, &event.LevelPayload{Level: 4}, r.emitted[0].Payload)
}

func TestMachineTickGuardUsesTimeInState(t *testing.T) {
	m, r := newTestMachine(t)
	r.allow = true
	require.NoError(t, m.Init(r))
	m.HandleEvent(r, event.EventNewGame)

	m.Update(r, 60*time.Millisecond)
	assert.Equal(t, "Run", m.CurrentState())
	m.Update(r, 40*time.Millisecond)
	assert.Equal(t, "Hold", m.CurrentState())
	assert.Equal(t, time.Duration(0), m.TimeInState())
}

func TestMachineReset(t *testing.T) {
	m, r := newTestMachine(t)
	r.allow = true
	require.NoError(t, m.Init(r))
	m.HandleEvent(r, event.EventNewGame)

	r.log = nil
	require.NoError(t, m.Reset(r))
	assert.Equal(t, []string{"exit Run", "exit Active", "enter Idle"}, r.log)
}

func TestMachineLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown parent":  "initial = \"A\"\n[states.A]\nparent = \"Nope\"\n",
		"unknown target":  "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"EventPause\", target = \"B\" }]\n",
		"unknown event":   "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"EventNope\", target = \"A\" }]\n",
		"unknown guard":   "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"EventPause\", target = \"A\", guard = \"Nope\" }]\n",
		"unknown action":  "initial = \"A\"\n[states.A]\non_enter = [{ action = \"Nope\" }]\n",
		"missing initial": "initial = \"Z\"\n[states.A]\n",
		"bad toml":        "initial = ",
		"bad payload":     "initial = \"A\"\n[states.A]\non_enter = [{ action = \"EmitEvent\", event = \"EventLevelStart\", payload = { lvl = 1 } }]\n",
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			m := NewMachine[*recorder]()
			m.RegisterAction("EmitEvent", func(*recorder, any) {})
			assert.Error(t, m.LoadConfig([]byte(cfg)))
		})
	}
}

func TestLoadConfigAutoPrefersPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flow.toml")
	require.NoError(t, os.WriteFile(path, []byte("initial = \"FromFile\"\n[states.FromFile]\n"), 0o644))

	m := NewMachine[*recorder]()
	require.NoError(t, LoadConfigAuto(m, path, "initial = \"Embedded\"\n[states.Embedded]\n"))
	require.NoError(t, m.Init(&recorder{}))
	assert.Equal(t, "FromFile", m.CurrentState())

	m2 := NewMachine[*recorder]()
	require.NoError(t, LoadConfigAuto(m2, "", "initial = \"Embedded\"\n[states.Embedded]\n"))
	require.NoError(t, m2.Init(&recorder{}))
	assert.Equal(t, "Embedded", m2.CurrentState())

	assert.Error(t, LoadConfigFromPath(NewMachine[*recorder](), filepath.Join(dir, "missing.toml")))
}
