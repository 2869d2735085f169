package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds stored labels, in runes, so the HUD line stays one row
const MaxStringLen = 36

// AtomicString is a lock-free label such as the current scene or level name
// The zero value holds the empty string
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, cut to MaxStringLen runes without splitting a character
func (s *AtomicString) Store(val string) {
	if utf8.RuneCountInString(val) > MaxStringLen {
		n := 0
		for i := range val {
			if n == MaxStringLen {
				val = val[:i]
				break
			}
			n++
		}
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
