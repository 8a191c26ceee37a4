package transport

import (
	"context"

	"github.com/robgonnella/deckhand/internal/device"
	"github.com/robgonnella/deckhand/internal/service"
)

//go:generate mockgen -destination=../mock/transport/mock_transport.go -package=mock_transport . Dialer,Session

// Dialer opens a transport session to an announced device
type Dialer interface {
	Connect(ctx context.Context, announcement device.Announcement) (Session, error)
}

// Session an established connection to a device on which individual
// services can be opened
type Session interface {
	FileTransfer(ctx context.Context) (service.FileTransfer, error)
	StateMap(ctx context.Context) (service.StateMap, error)
	Disconnect() error
}
