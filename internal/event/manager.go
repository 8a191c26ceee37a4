package event

import (
	"sync"

	"github.com/robgonnella/deckhand/internal/logger"
)

type listener struct {
	id        int
	eventType EventType
	channel   chan Event
}

// EventManager fans events out to listeners registered per event type
type EventManager struct {
	listeners []*listener
	nextID    int
	log       logger.Logger
	mux       sync.RWMutex
}

// NewEventManager returns a new *EventManager
func NewEventManager() *EventManager {
	return &EventManager{
		listeners: []*listener{},
		nextID:    1,
		log:       logger.New().With("event"),
		mux:       sync.RWMutex{},
	}
}

// RegisterListener registers a channel to receive events of a single type
// and returns the id used to remove it
func (m *EventManager) RegisterListener(eventType EventType, channel chan Event) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	l := &listener{
		id:        m.nextID,
		eventType: eventType,
		channel:   channel,
	}

	m.listeners = append(m.listeners, l)
	m.nextID++

	return l.id
}

// RemoveListener removes a registered listener and returns its id, or 0 if
// no listener with that id exists
func (m *EventManager) RemoveListener(id int) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	removed := 0
	listeners := []*listener{}

	for _, l := range m.listeners {
		if l.id == id {
			removed = id
			continue
		}
		listeners = append(listeners, l)
	}

	m.listeners = listeners

	return removed
}

// Send delivers event to every listener registered for its type. Delivery
// blocks until each listener receives it.
func (m *EventManager) Send(evt Event) {
	m.mux.RLock()
	targets := []chan Event{}
	for _, l := range m.listeners {
		if l.eventType == evt.Type {
			targets = append(targets, l.channel)
		}
	}
	m.mux.RUnlock()

	m.log.Debug().
		Str("type", string(evt.Type)).
		Int("listeners", len(targets)).
		Msg("sending event")

	for _, c := range targets {
		c <- evt
	}
}

// ReportFatalError sends a FatalErrorEventType event
func (m *EventManager) ReportFatalError(err error) {
	m.log.Error().Err(err).Msg("fatal error")
	m.Send(Event{Type: FatalErrorEventType, Payload: err})
}

// ReportError sends an ErrorEventType event
func (m *EventManager) ReportError(err error) {
	m.log.Warn().Err(err).Msg("error")
	m.Send(Event{Type: ErrorEventType, Payload: err})
}
