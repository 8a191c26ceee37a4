package discovery

import (
	"context"

	"github.com/robgonnella/deckhand/internal/device"
	"github.com/robgonnella/deckhand/internal/logger"
)

// ListenerService implements our discovery service on top of a Listener
type ListenerService struct {
	ctx        context.Context
	cancel     context.CancelFunc
	listener   Listener
	resultChan chan device.Announcement
	log        logger.Logger
}

// NewListenerService returns a new instance of ListenerService
func NewListenerService(listener Listener) *ListenerService {
	// Use a cancelable context so we can properly cleanup when needed
	ctxWithCancel, cancel := context.WithCancel(context.Background())

	return &ListenerService{
		ctx:        ctxWithCancel,
		cancel:     cancel,
		listener:   listener,
		resultChan: make(chan device.Announcement, 64),
		log:        logger.New().With("discovery"),
	}
}

// MonitorNetwork hands every received announcement to handler until
// stopped. Blocking.
func (s *ListenerService) MonitorNetwork(handler Handler) error {
	s.log.Info().Msg("Starting device discovery")

	if err := s.listener.Listen(s.resultChan); err != nil {
		return err
	}

	for {
		select {
		case <-s.ctx.Done():
			s.log.Info().Msg("Device discovery stopped")
			return s.ctx.Err()
		case announcement := <-s.resultChan:
			s.log.Debug().
				Str("address", announcement.Address).
				Uint16("port", announcement.Port).
				Str("source", announcement.Source).
				Str("software", announcement.Software.Name).
				Msg("received announcement")

			handler.HandleDevice(announcement)
		}
	}
}

// Stop stops device discovery
func (s *ListenerService) Stop() {
	s.listener.Stop()
	s.cancel()
}
