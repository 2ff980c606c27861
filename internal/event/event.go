// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event is a single simulation outcome. Data carries one of the payload
// structs from types.go.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine. It is not safe for concurrent use.
type Dispatcher struct {
	listeners map[EventType][]Listener
	any       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers l for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, l Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], l)
}

// SubscribeAll registers l for every event type.
func (d *Dispatcher) SubscribeAll(l Listener) {
	d.any = append(d.any, l)
}

// Dispatch sends e to the listeners of its type, then to catch-all listeners.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
	for _, l := range d.any {
		l.OnEvent(e)
	}
}
