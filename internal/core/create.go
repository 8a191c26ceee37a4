package core

import (
	"errors"

	"github.com/robgonnella/deckhand/internal/bridge"
	"github.com/robgonnella/deckhand/internal/config"
	"github.com/robgonnella/deckhand/internal/database"
	"github.com/robgonnella/deckhand/internal/discovery"
	"github.com/robgonnella/deckhand/internal/event"
	"github.com/robgonnella/deckhand/internal/service"
	"github.com/robgonnella/deckhand/internal/transport"
)

// Dependencies the protocol level collaborators core is built on
type Dependencies struct {
	Listener discovery.Listener
	Dialer   transport.Dialer
	Players  service.PlayerFactory
	Events   event.Manager
}

// CreateNewAppCore creates and returns a new instance of *core.Core backed
// by the sqlite source catalog configured in conf
func CreateNewAppCore(conf config.Config, deps Dependencies) (*Core, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	if deps.Dialer == nil || deps.Players == nil {
		return nil, errors.New("a dialer and player factory are required")
	}

	events := deps.Events

	if events == nil {
		events = event.NewEventManager()
	}

	var databaseService database.Service

	if conf.ShouldDownloadDbSources() {
		db, err := database.OpenSqlite(conf.DatabaseFile)

		if err != nil {
			return nil, err
		}

		sourceRepo := database.NewSqliteRepo(db)
		databaseService = database.NewSourceService(conf.CacheDir, sourceRepo)
	}

	var discoveryService discovery.Service

	if deps.Listener != nil {
		discoveryService = discovery.NewListenerService(deps.Listener)
	}

	c := New(
		conf,
		deps.Dialer,
		deps.Players,
		databaseService,
		discoveryService,
		events,
	)

	if conf.MQTT.Enabled {
		client, err := bridge.Connect(conf.MQTT)

		if err != nil {
			return nil, err
		}

		mqttBridge := bridge.NewMQTTBridge(client, conf.MQTT.TopicPrefix, events)
		mqttBridge.Start()

		c.onStop(func() {
			mqttBridge.Stop()
			client.Disconnect(250)
		})
	}

	return c, nil
}
