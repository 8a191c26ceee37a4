package core

import (
	"context"
	"sync"

	"github.com/robgonnella/deckhand/internal/config"
	"github.com/robgonnella/deckhand/internal/connection"
	"github.com/robgonnella/deckhand/internal/database"
	"github.com/robgonnella/deckhand/internal/device"
	"github.com/robgonnella/deckhand/internal/discovery"
	"github.com/robgonnella/deckhand/internal/event"
	"github.com/robgonnella/deckhand/internal/logger"
	"github.com/robgonnella/deckhand/internal/registry"
	"github.com/robgonnella/deckhand/internal/service"
	"github.com/robgonnella/deckhand/internal/transport"
)

// deferred a connected device waiting on the readiness barrier before its
// state sync is brought up
type deferred struct {
	announcement device.Announcement
	deviceID     string
	session      transport.Session
}

// Core represents our core data structure
type Core struct {
	ctx       context.Context
	cancel    context.CancelFunc
	conf      config.Config
	dialer    transport.Dialer
	players   service.PlayerFactory
	database  database.Service
	discovery discovery.Service
	events    event.Manager
	ignore    *device.IgnorePolicy
	tracker   *connection.Tracker
	registry  *registry.Registry
	pending   []deferred
	readied   bool
	readyChan chan struct{}
	attempts  sync.WaitGroup
	closers   []func()
	log       logger.Logger
	mux       sync.Mutex
}

// New returns new core module for given configuration. discovery may be
// nil when announcements are fed directly through HandleDevice, and
// databaseService may be nil when no database download is wanted.
func New(
	conf config.Config,
	dialer transport.Dialer,
	players service.PlayerFactory,
	databaseService database.Service,
	discoveryService discovery.Service,
	events event.Manager,
) *Core {
	ctx, cancel := context.WithCancel(context.Background())

	return &Core{
		ctx:       ctx,
		cancel:    cancel,
		conf:      conf,
		dialer:    dialer,
		players:   players,
		database:  databaseService,
		discovery: discoveryService,
		events:    events,
		ignore:    device.NewIgnorePolicy(conf),
		tracker:   connection.NewTracker(),
		registry:  registry.New(),
		pending:   []deferred{},
		readyChan: make(chan struct{}),
		log:       logger.New().With("core"),
		mux:       sync.Mutex{},
	}
}

// Conf returns the configuration core was created with
func (c *Core) Conf() config.Config {
	return c.conf
}

// Stop stops discovery, the readiness barrier, and all event forwarding.
// Live sessions are left connected; see DisconnectAll.
func (c *Core) Stop() error {
	if c.discovery != nil {
		c.discovery.Stop()
	}

	c.cancel()

	c.mux.Lock()
	closers := c.closers
	c.closers = nil
	c.mux.Unlock()

	for _, closer := range closers {
		closer()
	}

	return c.ctx.Err()
}

// onStop registers fn to run once when core is stopped
func (c *Core) onStop(fn func()) {
	c.mux.Lock()
	defer c.mux.Unlock()

	c.closers = append(c.closers, fn)
}

// Wait blocks until every in-flight connection attempt has settled
func (c *Core) Wait() {
	c.attempts.Wait()
}

// Ready is closed the first time the readiness barrier fires
func (c *Core) Ready() <-chan struct{} {
	return c.readyChan
}

// Statuses returns a snapshot of every device key seen and its status
func (c *Core) Statuses() []connection.Entry {
	return c.tracker.All()
}

// StatusOf returns the connection status for an announcement
func (c *Core) StatusOf(announcement device.Announcement) (connection.Status, bool) {
	return c.tracker.StatusOf(device.Key(announcement))
}

// Devices returns the live session of every connected device
func (c *Core) Devices() []*registry.Session {
	return c.registry.All()
}

// DisconnectAll severs the transport of every connected device
func (c *Core) DisconnectAll() error {
	c.log.Info().Msg("disconnecting all devices")
	return c.registry.DisconnectAll()
}

// DownloadFile fetches a file from a connected device, waiting for the
// device's file transfer service to become free first
func (c *Core) DownloadFile(ctx context.Context, deviceID, path string) ([]byte, error) {
	session, err := c.registry.Get(deviceID)

	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("deviceId", deviceID).
		Str("path", path).
		Msg("downloading file")

	return session.Download(ctx, path)
}

// RegisterEventListener registers a channel for a single event type and
// returns the id used to remove it
func (c *Core) RegisterEventListener(eventType event.EventType, channel chan event.Event) int {
	return c.events.RegisterListener(eventType, channel)
}

// RemoveEventListener removes a previously registered listener
func (c *Core) RemoveEventListener(id int) {
	c.events.RemoveListener(id)
}
