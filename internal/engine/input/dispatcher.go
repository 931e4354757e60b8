package input

// Handler reacts to one input event.
type Handler func(Event)

// Dispatcher routes events to the handlers registered for their type.
// Handlers are closures, so each one carries whatever state it acts on.
type Dispatcher struct {
	handlers map[EventType][]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventType][]Handler)}
}

// On registers fn for events of type t. Handlers run in registration order.
func (d *Dispatcher) On(t EventType, fn Handler) {
	d.handlers[t] = append(d.handlers[t], fn)
}

// OnKey registers fn for fresh key presses; auto-repeats are skipped.
func (d *Dispatcher) OnKey(fn func(key string)) {
	d.On(EventKeyDown, func(e Event) {
		if !e.Repeat {
			fn(e.Key)
		}
	})
}

// Dispatch delivers e to its handlers and reports whether any ran.
func (d *Dispatcher) Dispatch(e Event) bool {
	hs := d.handlers[e.Type]
	for _, h := range hs {
		h(e)
	}
	return len(hs) > 0
}

// DispatchAll delivers events in order.
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, e := range events {
		d.Dispatch(e)
	}
}
