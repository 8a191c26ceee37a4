package discovery

import "github.com/robgonnella/deckhand/internal/device"

//go:generate mockgen -destination=../mock/discovery/mock_discovery.go -package=mock_discovery . Listener,Handler

// Listener receives discovery announcements broadcast by devices
type Listener interface {
	// Listen starts delivering announcements to resultChan and returns
	// without blocking
	Listen(resultChan chan device.Announcement) error
	Stop()
}

// Handler reacts to a single discovery announcement
type Handler interface {
	HandleDevice(announcement device.Announcement)
}

// Service interface for monitoring the network for announcements
type Service interface {
	MonitorNetwork(handler Handler) error
	Stop()
}
