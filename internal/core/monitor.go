package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/robgonnella/deckhand/internal/connection"
	"github.com/robgonnella/deckhand/internal/event"
	"github.com/robgonnella/deckhand/internal/service"
)

// Monitor starts discovery, if configured, and runs the readiness barrier
// until Stop is called. Blocking.
func (c *Core) Monitor() error {
	if c.discovery != nil {
		go func() {
			err := c.discovery.MonitorNetwork(c)

			if err != nil && c.ctx.Err() == nil {
				c.events.ReportFatalError(fmt.Errorf("discovery stopped: %w", err))
			}
		}()
	}

	ticker := time.NewTicker(c.conf.BarrierInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return c.ctx.Err()
		case <-ticker.C:
			c.checkReadiness()
		}
	}
}

// checkReadiness fires the barrier once no known device is still
// connecting. The first firing signals ready even if every device failed;
// later firings only happen when late devices have queued up.
func (c *Core) checkReadiness() bool {
	c.mux.Lock()

	entries := c.tracker.All()

	if !connection.Quiescent(entries) {
		c.mux.Unlock()
		c.logProgress(entries)
		return false
	}

	if c.readied && len(c.pending) == 0 {
		c.mux.Unlock()
		return false
	}

	pending := c.pending
	c.pending = []deferred{}
	first := !c.readied
	c.readied = true

	c.mux.Unlock()

	ids := []string{}

	for _, d := range pending {
		if !c.isCurrent(d) {
			c.log.Debug().
				Str("deviceId", d.deviceID).
				Msg("skipping state sync for replaced session")
			continue
		}

		if err := c.bringUp(d); err != nil {
			c.log.Error().
				Err(err).
				Str("deviceId", d.deviceID).
				Msg("state sync bring-up failed for connected device")

			c.events.ReportFatalError(
				fmt.Errorf("state sync bring-up for %s: %w", d.deviceID, err),
			)

			continue
		}

		ids = append(ids, d.deviceID)
	}

	if first {
		close(c.readyChan)
	}

	c.log.Info().Strs("devices", ids).Msg("ready")

	c.events.Send(event.Event{
		Type:    event.ReadyEventType,
		Payload: event.ReadyPayload{Devices: ids},
	})

	return true
}

// isCurrent reports whether d's session is still the registered session
// for its device
func (c *Core) isCurrent(d deferred) bool {
	session, err := c.registry.Get(d.deviceID)

	if err != nil {
		return false
	}

	return session.Conn == d.session
}

func (c *Core) logProgress(entries []connection.Entry) {
	connecting := 0

	for _, e := range entries {
		if e.Status == connection.StatusConnecting {
			connecting++
		}
	}

	c.log.Debug().
		Int("known", len(entries)).
		Int("connecting", connecting).
		Msg("waiting for devices to settle")
}

// bringUp opens state sync for a deferred device and wires its events into
// the public event stream
func (c *Core) bringUp(d deferred) error {
	if c.players == nil {
		return errors.New("no player factory configured")
	}

	stateMap, err := d.session.StateMap(c.ctx)

	if err != nil {
		return err
	}

	player, err := c.players.NewPlayer(
		stateMap,
		d.announcement.Address,
		d.announcement.Port,
		d.deviceID,
	)

	if err != nil {
		return err
	}

	go c.forwardMessages(d, stateMap.Messages())
	go c.forwardPlayerEvents(player.Events())

	return nil
}

func (c *Core) forwardMessages(d deferred, messages <-chan service.Message) {
	for {
		select {
		case <-c.ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			c.events.Send(event.Event{
				Type: event.MessageEventType,
				Payload: event.MessagePayload{
					Announcement: d.announcement,
					Message:      msg,
				},
			})
		}
	}
}

func (c *Core) forwardPlayerEvents(events <-chan service.PlayerEvent) {
	for {
		select {
		case <-c.ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}

			c.events.Send(event.Event{
				Type:    event.PlayerEventType(evt.Type),
				Payload: evt.Status,
			})
		}
	}
}
