package service

import "context"

//go:generate mockgen -destination=../mock/service/mock_service.go -package=mock_service . FileTransfer,StateMap,Player,PlayerFactory

// FileTransfer handle to a device's file transfer service. Only one
// transfer may be in flight at a time.
type FileTransfer interface {
	// WaitTillAvailable blocks until the service can accept a new transfer
	WaitTillAvailable(ctx context.Context) error
	// GetFile fetches the file at path from the device
	GetFile(ctx context.Context, path string) ([]byte, error)
	// Sources lists the media sources (usb, sd, etc.) the device exposes
	Sources(ctx context.Context) ([]string, error)
}

// StateMap handle to a device's state synchronization service
type StateMap interface {
	// Messages streams state updates until the service closes
	Messages() <-chan Message
}

// Player per device abstraction built on top of its state map
type Player interface {
	// Events streams player events until the underlying state map closes
	Events() <-chan PlayerEvent
}

// PlayerFactory creates a Player for a connected device
type PlayerFactory interface {
	NewPlayer(stateMap StateMap, address string, port uint16, deviceID string) (Player, error)
}
