package progress

import (
	"encoding/json"
	"sort"
)

// StringSet is a set of identifiers persisted as a sorted JSON array
type StringSet map[string]struct{}

// NewStringSet creates a set holding items
func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// Has reports membership
func (s StringSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id; returns false if it was already present
func (s StringSet) Add(id string) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Sorted returns members in lexical order
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy
func (s StringSet) Clone() StringSet {
	c := make(StringSet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON accepts an array of strings; null yields an empty set
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewStringSet(items...)
	return nil
}
