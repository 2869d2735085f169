package event

import (
	"sync"

	"github.com/lixenwraith/xochi/parameter"
)

// EventQueue is a bounded FIFO of game events
// Thread-Safety:
//   - Push: any goroutine (host input pushes pause/resume)
//   - Consume: single consumer (game loop)
//
// Overflow: oldest events are dropped when full
type EventQueue struct {
	mu     sync.Mutex
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest when the ring is full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Emit is shorthand for pushing a typed event with payload
func (eq *EventQueue) Emit(et EventType, payload any, frame int64) {
	eq.Push(GameEvent{Type: et, Payload: payload, Frame: frame})
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&parameter.EventBufferMask])
		eq.events[i&parameter.EventBufferMask] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.tail - eq.head)
}
