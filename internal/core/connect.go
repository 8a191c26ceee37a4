package core

import (
	"fmt"
	"time"

	"github.com/robgonnella/deckhand/internal/connection"
	"github.com/robgonnella/deckhand/internal/device"
	"github.com/robgonnella/deckhand/internal/event"
	"github.com/robgonnella/deckhand/internal/exception"
	"github.com/robgonnella/deckhand/internal/registry"
	"github.com/robgonnella/deckhand/internal/transport"
)

// HandleDevice feeds a single discovery announcement to core. Ignored,
// malformed, and already seen announcements are dropped. Otherwise a
// connection attempt is started in the background.
func (c *Core) HandleDevice(announcement device.Announcement) {
	if c.ignore.ShouldIgnore(announcement) {
		c.log.Debug().
			Str("source", announcement.Source).
			Str("software", announcement.Software.Name).
			Msg("ignoring announcement")
		return
	}

	deviceID, err := device.StableID(announcement.Token)

	if err != nil {
		c.log.Warn().
			Err(err).
			Str("address", announcement.Address).
			Msg("dropping announcement")
		return
	}

	key := device.Key(announcement)

	if !c.tracker.Begin(key) {
		status, _ := c.tracker.StatusOf(key)

		c.log.Debug().
			Str("key", key).
			Str("status", string(status)).
			Msg("device already handled")
		return
	}

	c.log.Info().
		Str("key", key).
		Str("deviceId", deviceID).
		Str("address", announcement.Address).
		Uint16("port", announcement.Port).
		Str("software", announcement.Software.Name).
		Msg("connecting to device")

	c.attempts.Add(1)

	go func() {
		defer c.attempts.Done()

		if err := c.connect(announcement, key, deviceID); err != nil {
			c.log.Error().Err(err).Str("key", key).Msg("giving up on device")

			c.events.Send(event.Event{
				Type: event.DeviceFailedEventType,
				Payload: event.DeviceFailedPayload{
					Announcement: announcement,
					Err:          err,
				},
			})

			c.events.ReportError(err)
		}
	}()
}

// number of connection attempts made before a device is marked failed
func (c *Core) maxAttempts() int {
	if c.conf.MaxRetries > 1 {
		return c.conf.MaxRetries - 1
	}

	return 1
}

// connect runs the retry loop for a single device. The caller must own the
// CONNECTING entry for key.
func (c *Core) connect(announcement device.Announcement, key, deviceID string) error {
	attempts := c.maxAttempts()

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		err := c.attempt(announcement, key, deviceID)

		if err == nil {
			return nil
		}

		lastErr = err

		c.log.Warn().
			Err(err).
			Str("key", key).
			Int("attempt", attempt).
			Int("maxAttempts", attempts).
			Msg("connection attempt failed")

		if attempt == attempts {
			break
		}

		if err := c.sleep(c.conf.RetryInterval); err != nil {
			lastErr = err
			break
		}
	}

	c.tracker.Transition(key, connection.StatusConnecting, connection.StatusFailed)

	return exception.NewConnectionError(key, attempts, lastErr)
}

// attempt makes a single connection attempt
func (c *Core) attempt(announcement device.Announcement, key, deviceID string) error {
	conn, err := c.dialer.Connect(c.ctx, announcement)

	if err != nil {
		return fmt.Errorf("%w: connect: %w", exception.ErrTransientConnect, err)
	}

	fileTransfer, err := conn.FileTransfer(c.ctx)

	if err != nil {
		if dErr := conn.Disconnect(); dErr != nil {
			c.log.Debug().Err(dErr).Str("key", key).Msg("failed to close session")
		}

		return fmt.Errorf("%w: file transfer: %w", exception.ErrTransientConnect, err)
	}

	session := registry.NewSession(deviceID, announcement, conn, fileTransfer)

	if previous := c.registry.Put(session); previous != nil && previous.Conn != conn {
		c.log.Info().
			Str("deviceId", deviceID).
			Msg("replacing session for device seen at a new address")

		c.dropPending(previous.Conn)

		if err := previous.Conn.Disconnect(); err != nil {
			c.log.Debug().Err(err).Str("deviceId", deviceID).Msg("failed to close replaced session")
		}
	}

	c.downloadSources(announcement, session)

	c.mux.Lock()
	c.pending = append(c.pending, deferred{
		announcement: announcement,
		deviceID:     deviceID,
		session:      conn,
	})
	c.tracker.Transition(key, connection.StatusConnecting, connection.StatusConnected)
	c.mux.Unlock()

	c.log.Info().
		Str("key", key).
		Str("deviceId", deviceID).
		Msg("device connected")

	c.events.Send(event.Event{
		Type:    event.ConnectedEventType,
		Payload: event.ConnectedPayload{Announcement: announcement},
	})

	return nil
}

// dropPending removes any deferred bring-up still queued for a replaced
// session
func (c *Core) dropPending(session transport.Session) {
	c.mux.Lock()
	defer c.mux.Unlock()

	kept := []deferred{}

	for _, d := range c.pending {
		if d.session != session {
			kept = append(kept, d)
		}
	}

	c.pending = kept
}

// downloadSources is best effort; failures never fail the attempt
func (c *Core) downloadSources(announcement device.Announcement, session *registry.Session) {
	if c.database == nil || !c.conf.ShouldDownloadDbSources() {
		return
	}

	names, err := c.database.DownloadSourcesFromDevice(
		c.ctx,
		announcement,
		session.FileTransfer,
	)

	if err != nil {
		c.log.Error().
			Err(err).
			Str("deviceId", session.DeviceID).
			Msg("failed to download database sources")
		return
	}

	c.log.Info().
		Str("deviceId", session.DeviceID).
		Strs("sources", names).
		Msg("database sources downloaded")
}

func (c *Core) sleep(d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-c.ctx.Done():
		return c.ctx.Err()
	case <-timer.C:
		return nil
	}
}
