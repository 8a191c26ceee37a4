package event

import (
	"github.com/robgonnella/deckhand/internal/device"
	"github.com/robgonnella/deckhand/internal/service"
)

type EventType string

const (
	FatalErrorEventType   EventType = "fatal-error"
	ErrorEventType        EventType = "error"
	ConnectedEventType    EventType = "connected"
	DeviceFailedEventType EventType = "device-failed"
	MessageEventType      EventType = "message"
	TrackLoadedEventType  EventType = "track-loaded"
	StateChangedEventType EventType = "state-changed"
	NowPlayingEventType   EventType = "now-playing"
	ReadyEventType        EventType = "ready"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Payload any
}

// ConnectedPayload payload for ConnectedEventType
type ConnectedPayload struct {
	Announcement device.Announcement
}

// DeviceFailedPayload payload for DeviceFailedEventType
type DeviceFailedPayload struct {
	Announcement device.Announcement
	Err          error
}

// MessagePayload payload for MessageEventType
type MessagePayload struct {
	Announcement device.Announcement
	Message      service.Message
}

// ReadyPayload payload for ReadyEventType
type ReadyPayload struct {
	// Devices ids of the devices whose state sync was brought up
	Devices []string
}

// PlayerEventType maps a player event to the public event type
func PlayerEventType(t service.PlayerEventType) EventType {
	switch t {
	case service.TrackLoaded:
		return TrackLoadedEventType
	case service.StateChanged:
		return StateChangedEventType
	default:
		return NowPlayingEventType
	}
}
