package fsm

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/xochi/event"
)

// LoadConfig parses a TOML byte slice and populates the Machine
// Validates all references (states, guards, actions, events) and clears any existing graph
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}

	m.nodes = make(map[StateID]*Node[T])
	m.nameToID = make(map[string]StateID)
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	m.timeInState = 0

	m.addState(StateRoot, "Root", StateNone)
	if _, ok := config.States["Root"]; !ok {
		config.States["Root"] = &StateConfig{}
	}

	// Sorted names give deterministic IDs
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			stateNames = append(stateNames, name)
		}
	}
	sort.Strings(stateNames)

	ids := make(map[string]StateID, len(stateNames)+1)
	ids["Root"] = StateRoot
	for i, name := range stateNames {
		ids[name] = StateID(i + 2)
	}

	// Create nodes before compiling transitions so targets resolve
	for _, name := range stateNames {
		pName := config.States[name].Parent
		if pName == "" {
			pName = "Root"
		}
		parentID, ok := ids[pName]
		if !ok {
			return fmt.Errorf("state '%s' references unknown parent '%s'", name, pName)
		}
		m.addState(ids[name], name, parentID)
	}

	for name, cfg := range config.States {
		node := m.nodes[ids[name]]

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' OnEnter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' OnUpdate: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' OnExit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	if err := m.compilePaths(); err != nil {
		return err
	}

	initialID, ok := ids[config.InitialState]
	if !ok || initialID == StateRoot {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initialID
	return nil
}

// GetStateID resolves a state name to ID
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	id, ok := m.nameToID[name]
	return id, ok
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}

		var args any
		switch cfg.Action {
		case "EmitEvent":
			if cfg.Event == "" {
				return nil, fmt.Errorf("EmitEvent action requires 'event' field")
			}
			et, ok := event.GetEventType(cfg.Event)
			if !ok || et == event.EventTick {
				return nil, fmt.Errorf("unknown event type '%s'", cfg.Event)
			}
			payload := event.NewPayloadStruct(et)
			if payload != nil && cfg.Payload != nil {
				if err := decodePayload(cfg.Payload, payload); err != nil {
					return nil, fmt.Errorf("failed to decode payload for event '%s': %w", cfg.Event, err)
				}
			}
			args = &EmitEventArgs{Type: et, Payload: payload}

		default:
			if cfg.Message != "" || cfg.Action == "Log" {
				args = &LogArgs{Message: cfg.Message}
			}
		}

		actions = append(actions, Action[T]{Func: fn, Args: args})
	}
	return actions, nil
}

// decodePayload round-trips a parsed TOML table into the typed payload struct
func decodePayload(raw map[string]any, dst any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(raw); err != nil {
		return err
	}
	md, err := toml.Decode(buf.String(), dst)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown payload field '%s'", undecoded[0].String())
	}
	return nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig) error {
	for _, cfg := range configs {
		targetID, ok := m.nameToID[cfg.Target]
		if !ok || targetID == StateRoot {
			return fmt.Errorf("transition references unknown target '%s'", cfg.Target)
		}

		et, ok := event.GetEventType(cfg.Trigger)
		if !ok {
			return fmt.Errorf("unknown event type '%s'", cfg.Trigger)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			if factory, ok := m.guardFactoryReg[cfg.Guard]; ok {
				guard = factory(m, cfg.GuardArgs)
			} else if g, ok := m.guardReg[cfg.Guard]; ok {
				guard = g
			} else {
				return fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Event:    et,
			Guard:    guard,
		})
	}
	return nil
}

// durationArg reads a millisecond integer or float from guard args
func durationArg(args map[string]any, key string) time.Duration {
	switch v := args[key].(type) {
	case int64:
		return time.Duration(v) * time.Millisecond
	case float64:
		return time.Duration(v * float64(time.Millisecond))
	case int:
		return time.Duration(v) * time.Millisecond
	}
	return 0
}
