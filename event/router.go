package event

// Handler processes specific event types
// Host adapters (audio, metrics) implement this to receive routed events
type Handler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a function to a Handler for a fixed set of types
type HandlerFunc struct {
	Types []EventType
	Fn    func(ev GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent)  { h.Fn(ev) }
func (h HandlerFunc) EventTypes() []EventType { return h.Types }

// Router dispatches queued events to registered handlers
// Single-threaded dispatch; handlers for one type run in registration order
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events, routes them, and returns them for further processing
func (r *Router) DispatchAll() []GameEvent {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return events
}

// HasHandlers reports whether any handler is registered for the type
func (r *Router) HasHandlers(et EventType) bool {
	return len(r.handlers[et]) > 0
}
