package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/xochi/event"
)

// NewMachine creates a new FSM instance with the built-in StateTimeExceeds guard factory
func NewMachine[T any]() *Machine[T] {
	m := &Machine[T]{
		nodes:           make(map[StateID]*Node[T]),
		nameToID:        make(map[string]StateID),
		guardReg:        make(map[string]GuardFunc[T]),
		guardFactoryReg: make(map[string]GuardFactoryFunc[T]),
		actionReg:       make(map[string]ActionFunc[T]),
		activePath:      make([]StateID, 0, 4),
	}
	m.RegisterGuardFactory("StateTimeExceeds", func(m *Machine[T], args map[string]any) GuardFunc[T] {
		limit := durationArg(args, "ms")
		return func(T) bool { return m.timeInState >= limit }
	})
	return m
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterGuardFactory adds a parameterized guard factory to the registry
func (m *Machine[T]) RegisterGuardFactory(name string, factory GuardFactoryFunc[T]) {
	m.guardFactoryReg[name] = factory
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter from Root down
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		runActions(ctx, m.nodes[id].OnEnter)
	}
	return nil
}

// Update advances time in state, runs OnUpdate of the leaf, and evaluates Tick transitions bubbling up
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}
	m.timeInState += dt

	runActions(ctx, m.nodes[m.activeStateID].OnUpdate)
	m.fire(ctx, event.EventTick)
}

// HandleEvent routes an external event from the leaf upward
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, et event.EventType) bool {
	if m.activeStateID == StateNone || et == event.EventTick {
		return false
	}
	return m.fire(ctx, et)
}

func (m *Machine[T]) fire(ctx T, et event.EventType) bool {
	for currID := m.activeStateID; currID != StateNone; {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != et {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition exits up to the lowest common ancestor and enters down to target
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", targetID))
	}

	currentPath := m.activePath
	targetPath := targetNode.Path

	lcaIndex := -1
	for i := 0; i < len(currentPath) && i < len(targetPath); i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}
	// Self-transition re-enters the leaf
	if targetID == m.activeStateID {
		lcaIndex = len(targetPath) - 2
	}

	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		runActions(ctx, m.nodes[currentPath[i]].OnExit)
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)

	for i := lcaIndex + 1; i < len(targetPath); i++ {
		runActions(ctx, m.nodes[targetPath[i]].OnEnter)
	}
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, a := range actions {
		a.Func(ctx, a.Args)
	}
}

// Reset exits the whole active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		runActions(ctx, m.nodes[m.activePath[i]].OnExit)
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx)
}

// CurrentState returns the active leaf name
func (m *Machine[T]) CurrentState() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// CurrentStateID returns the active leaf ID
func (m *Machine[T]) CurrentStateID() StateID {
	return m.activeStateID
}

// IsIn reports whether the named state is the leaf or one of its ancestors
func (m *Machine[T]) IsIn(name string) bool {
	id, ok := m.nameToID[name]
	if !ok {
		return false
	}
	for _, p := range m.activePath {
		if p == id {
			return true
		}
	}
	return false
}

// TimeInState returns time spent in the current leaf
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
