package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/robgonnella/deckhand/internal/device"
	"github.com/robgonnella/deckhand/internal/exception"
	"github.com/robgonnella/deckhand/internal/service"
	"github.com/robgonnella/deckhand/internal/transport"
)

// Session the live resources for a connected device
type Session struct {
	DeviceID     string
	Announcement device.Announcement
	Conn         transport.Session
	FileTransfer service.FileTransfer
	transfer     sync.Mutex
}

// NewSession returns a new *Session
func NewSession(
	deviceID string,
	announcement device.Announcement,
	conn transport.Session,
	fileTransfer service.FileTransfer,
) *Session {
	return &Session{
		DeviceID:     deviceID,
		Announcement: announcement,
		Conn:         conn,
		FileTransfer: fileTransfer,
	}
}

// Download fetches a file over the session's file transfer service. Calls
// against the same session queue behind each other.
func (s *Session) Download(ctx context.Context, path string) ([]byte, error) {
	s.transfer.Lock()
	defer s.transfer.Unlock()

	if err := s.FileTransfer.WaitTillAvailable(ctx); err != nil {
		return nil, err
	}

	return s.FileTransfer.GetFile(ctx, path)
}

// Registry maps normalized device ids to live sessions
type Registry struct {
	sessions map[string]*Session
	mux      sync.RWMutex
}

// New returns a new empty Registry
func New() *Registry {
	return &Registry{
		sessions: map[string]*Session{},
		mux:      sync.RWMutex{},
	}
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Get returns the session for a device id
func (r *Registry) Get(id string) (*Session, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()

	s, ok := r.sessions[normalize(id)]

	if !ok {
		return nil, fmt.Errorf("%w: %s", exception.ErrDeviceNotFound, id)
	}

	return s, nil
}

// Put stores a session and returns any session it replaced
func (r *Registry) Put(s *Session) *Session {
	r.mux.Lock()
	defer r.mux.Unlock()

	id := normalize(s.DeviceID)
	previous := r.sessions[id]
	r.sessions[id] = s

	return previous
}

// All returns every registered session sorted by device id
func (r *Registry) All() []*Session {
	r.mux.RLock()
	defer r.mux.RUnlock()

	sessions := make([]*Session, 0, len(r.sessions))

	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].DeviceID < sessions[j].DeviceID
	})

	return sessions
}

// DisconnectAll severs every registered session and empties the registry
func (r *Registry) DisconnectAll() error {
	r.mux.Lock()
	sessions := r.sessions
	r.sessions = map[string]*Session{}
	r.mux.Unlock()

	errs := []error{}

	for id, s := range sessions {
		if err := s.Conn.Disconnect(); err != nil {
			errs = append(errs, fmt.Errorf("disconnect %s: %w", id, err))
		}
	}

	return errors.Join(errs...)
}
