package bridge

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/robgonnella/deckhand/internal/config"
	"github.com/robgonnella/deckhand/internal/device"
	"github.com/robgonnella/deckhand/internal/event"
	"github.com/robgonnella/deckhand/internal/logger"
)

const publishTimeout = time.Second * 5

// PublishedEvents the public events mirrored onto the broker
var PublishedEvents = []event.EventType{
	event.ConnectedEventType,
	event.DeviceFailedEventType,
	event.MessageEventType,
	event.TrackLoadedEventType,
	event.StateChangedEventType,
	event.NowPlayingEventType,
	event.ReadyEventType,
}

// Publisher the subset of the paho client the bridge needs
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) pahomqtt.Token
}

// Connect connects a paho client to the configured broker
func Connect(conf config.MQTT) (pahomqtt.Client, error) {
	opts := pahomqtt.NewClientOptions().
		AddBroker(conf.Broker).
		SetClientID(conf.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectTimeout(publishTimeout)

	client := pahomqtt.NewClient(opts)
	token := client.Connect()

	if !token.WaitTimeout(publishTimeout) {
		return nil, fmt.Errorf("mqtt connect: timeout after %v", publishTimeout)
	}

	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}

	return client, nil
}

// MQTTBridge mirrors public events onto mqtt topics of the form
// <prefix>/events/<event-type>
type MQTTBridge struct {
	client   Publisher
	prefix   string
	events   event.Manager
	incoming chan event.Event
	done     chan struct{}
	ids      []int
	log      logger.Logger
	mux      sync.Mutex
}

// NewMQTTBridge returns a new *MQTTBridge
func NewMQTTBridge(client Publisher, prefix string, events event.Manager) *MQTTBridge {
	return &MQTTBridge{
		client:   client,
		prefix:   prefix,
		events:   events,
		incoming: make(chan event.Event, 100),
		done:     make(chan struct{}),
		ids:      []int{},
		log:      logger.New().With("mqtt"),
	}
}

// Start registers for every published event type and begins publishing
func (b *MQTTBridge) Start() {
	b.mux.Lock()
	defer b.mux.Unlock()

	for _, t := range PublishedEvents {
		b.ids = append(b.ids, b.events.RegisterListener(t, b.incoming))
	}

	go b.run()
}

// Stop removes the bridge's listeners and stops publishing
func (b *MQTTBridge) Stop() {
	b.mux.Lock()
	defer b.mux.Unlock()

	for _, id := range b.ids {
		b.events.RemoveListener(id)
	}

	b.ids = []int{}

	close(b.done)
}

func (b *MQTTBridge) run() {
	for {
		select {
		case <-b.done:
			return
		case evt := <-b.incoming:
			if err := b.publish(evt); err != nil {
				b.log.Error().Err(err).Str("type", string(evt.Type)).Msg("failed to publish event")
			}
		}
	}
}

// Topic returns the topic an event type is published on
func (b *MQTTBridge) Topic(eventType event.EventType) string {
	return fmt.Sprintf("%s/events/%s", b.prefix, eventType)
}

func (b *MQTTBridge) publish(evt event.Event) error {
	payload, err := json.Marshal(encode(evt))

	if err != nil {
		return err
	}

	token := b.client.Publish(b.Topic(evt.Type), 0, false, payload)

	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish timed out after %v", publishTimeout)
	}

	return token.Error()
}

type wireDevice struct {
	ID       string `json:"id,omitempty"`
	Address  string `json:"address"`
	Port     uint16 `json:"port"`
	Source   string `json:"source"`
	Software string `json:"software"`
	Version  string `json:"version"`
}

func toWireDevice(a device.Announcement) wireDevice {
	id, _ := device.StableID(a.Token)

	return wireDevice{
		ID:       id,
		Address:  a.Address,
		Port:     a.Port,
		Source:   a.Source,
		Software: a.Software.Name,
		Version:  a.Software.Version,
	}
}

// encode converts event payloads into json friendly values
func encode(evt event.Event) any {
	switch p := evt.Payload.(type) {
	case event.ConnectedPayload:
		return map[string]any{"device": toWireDevice(p.Announcement)}
	case event.DeviceFailedPayload:
		msg := ""
		if p.Err != nil {
			msg = p.Err.Error()
		}
		return map[string]any{"device": toWireDevice(p.Announcement), "error": msg}
	case event.MessagePayload:
		return map[string]any{"device": toWireDevice(p.Announcement), "message": p.Message}
	default:
		return p
	}
}
