// Package eventbus decouples pipeline outcomes from side consumers such as
// the logger and the clipboard. It is notification fan-out only and sits
// outside the navigation pipeline itself.
package eventbus

import (
	"log"
	"sync"
)

// EventType identifies a kind of notification.
type EventType string

const (
	EventHighlightMoved EventType = "highlight_moved"
	EventSelectionMade  EventType = "selection_made"
	EventGateToggled    EventType = "gate_toggled"
)

// Event is anything the bus can carry.
type Event interface {
	Type() EventType
}

// HighlightMovedEvent reports a highlight change. A position of -1 means no
// highlight.
type HighlightMovedEvent struct {
	From int
	To   int
}

func (HighlightMovedEvent) Type() EventType { return EventHighlightMoved }

// SelectionMadeEvent reports a committed selection.
type SelectionMadeEvent struct {
	Index int
	Label string
}

func (SelectionMadeEvent) Type() EventType { return EventSelectionMade }

// GateToggledEvent reports the input gate opening or closing.
type GateToggledEvent struct {
	Open bool
}

func (GateToggledEvent) Type() EventType { return EventGateToggled }

// Handler receives published events.
type Handler func(Event)

// Bus is the interface for the event bus.
type Bus interface {
	Publish(Event)
	Subscribe(EventType, Handler) func()
	Close()
}

type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType]map[int]Handler
	events   chan Event
	quit     chan struct{}
	wg       sync.WaitGroup
}

// New creates a bus and starts its dispatcher.
func New() Bus {
	b := &bus{
		handlers: make(map[EventType]map[int]Handler),
		events:   make(chan Event, 64),
		quit:     make(chan struct{}),
	}
	b.wg.Add(1)
	go b.dispatch()
	return b
}

// Publish hands an event to the dispatcher. The bus never blocks a publisher:
// when the buffer is full the event is dropped and logged.
func (b *bus) Publish(event Event) {
	select {
	case b.events <- event:
	default:
		log.Printf("eventbus: buffer full, dropping %s", event.Type())
	}
}

// Subscribe registers a handler for one event type and returns its
// unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[int]Handler)
	}
	b.handlers[eventType][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[eventType], id)
	}
}

// Close stops the dispatcher. Pending events are discarded.
func (b *bus) Close() {
	close(b.quit)
	b.wg.Wait()
}

func (b *bus) dispatch() {
	defer b.wg.Done()
	for {
		select {
		case event := <-b.events:
			b.mu.RLock()
			handlers := make([]Handler, 0, len(b.handlers[event.Type()]))
			for _, h := range b.handlers[event.Type()] {
				handlers = append(handlers, h)
			}
			b.mu.RUnlock()
			for _, h := range handlers {
				h(event)
			}
		case <-b.quit:
			return
		}
	}
}
