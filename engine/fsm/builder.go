package fsm

import "fmt"

func (m *Machine[T]) addState(id StateID, name string, parentID StateID) {
	m.nodes[id] = &Node[T]{ID: id, Name: name, ParentID: parentID}
	m.nameToID[name] = id
}

// compilePaths resolves each node's root-first ancestry; runs once every node is added
func (m *Machine[T]) compilePaths() error {
	for _, node := range m.nodes {
		var path []StateID
		for curr := node; ; {
			path = append([]StateID{curr.ID}, path...)
			if curr.ParentID == StateNone {
				break
			}
			parent, ok := m.nodes[curr.ParentID]
			if !ok {
				return fmt.Errorf("state %q references missing parent %d", node.Name, curr.ParentID)
			}
			if len(path) > len(m.nodes) {
				return fmt.Errorf("state %q has a parent cycle", node.Name)
			}
			curr = parent
		}
		node.Path = path
	}
	return nil
}
