package core_test

import (
	"context"
	"errors"
	"path"
	"sort"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/robgonnella/deckhand/internal/config"
	"github.com/robgonnella/deckhand/internal/connection"
	"github.com/robgonnella/deckhand/internal/core"
	"github.com/robgonnella/deckhand/internal/device"
	"github.com/robgonnella/deckhand/internal/discovery"
	"github.com/robgonnella/deckhand/internal/event"
	"github.com/robgonnella/deckhand/internal/exception"
	mock_database "github.com/robgonnella/deckhand/internal/mock/database"
	mock_discovery "github.com/robgonnella/deckhand/internal/mock/discovery"
	mock_service "github.com/robgonnella/deckhand/internal/mock/service"
	mock_transport "github.com/robgonnella/deckhand/internal/mock/transport"
	"github.com/robgonnella/deckhand/internal/service"
	"github.com/robgonnella/deckhand/internal/test_util"
	"github.com/robgonnella/deckhand/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	ctrl    *gomock.Controller
	dialer  *mock_transport.MockDialer
	players *mock_service.MockPlayerFactory
	db      *mock_database.MockService
	core    *core.Core
}

func testConf() config.Config {
	conf := config.Default()
	conf.MaxRetries = 3
	conf.RetryInterval = time.Millisecond
	conf.BarrierInterval = time.Millisecond * 20
	return *conf
}

func newHarness(ctrl *gomock.Controller, conf config.Config) *harness {
	h := &harness{
		ctrl:    ctrl,
		dialer:  mock_transport.NewMockDialer(ctrl),
		players: mock_service.NewMockPlayerFactory(ctrl),
		db:      mock_database.NewMockService(ctrl),
	}

	h.core = core.New(
		conf,
		h.dialer,
		h.players,
		h.db,
		nil,
		event.NewEventManager(),
	)

	return h
}

func (h *harness) listen(eventType event.EventType) chan event.Event {
	ch := make(chan event.Event, 10)
	h.core.RegisterEventListener(eventType, ch)
	return ch
}

// expectConnect sets up a device that connects on its first attempt
func (h *harness) expectConnect(a device.Announcement) (*mock_transport.MockSession, *mock_service.MockFileTransfer) {
	session := mock_transport.NewMockSession(h.ctrl)
	fileTransfer := mock_service.NewMockFileTransfer(h.ctrl)

	h.dialer.EXPECT().Connect(gomock.Any(), a).Return(session, nil)
	session.EXPECT().FileTransfer(gomock.Any()).Return(fileTransfer, nil)
	h.db.EXPECT().
		DownloadSourcesFromDevice(gomock.Any(), a, fileTransfer).
		Return([]string{"usb"}, nil)

	return session, fileTransfer
}

// expectBringUp sets up state sync for a connected device and returns the
// channels its state map and player stream on
func (h *harness) expectBringUp(
	session *mock_transport.MockSession,
	a device.Announcement,
) (chan service.Message, chan service.PlayerEvent) {
	stateMap := mock_service.NewMockStateMap(h.ctrl)
	player := mock_service.NewMockPlayer(h.ctrl)

	messages := make(chan service.Message, 1)
	playerEvents := make(chan service.PlayerEvent, 1)

	var messagesOut <-chan service.Message = messages
	var playerEventsOut <-chan service.PlayerEvent = playerEvents

	id, _ := device.StableID(a.Token)

	session.EXPECT().StateMap(gomock.Any()).Return(stateMap, nil)
	stateMap.EXPECT().Messages().Return(messagesOut)
	h.players.EXPECT().NewPlayer(stateMap, a.Address, a.Port, id).Return(player, nil)
	player.EXPECT().Events().Return(playerEventsOut)

	return messages, playerEvents
}

func receive(t *testing.T, ch chan event.Event) event.Event {
	t.Helper()

	select {
	case evt := <-ch:
		return evt
	case <-time.After(time.Second * 2):
		t.Fatal("timed out waiting for event")
		return event.Event{}
	}
}

func assertNoEvent(t *testing.T, ch chan event.Event, wait time.Duration) {
	t.Helper()

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event: %s", evt.Type)
	case <-time.After(wait):
	}
}

func TestCore(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("connects device and brings up state sync when ready", func(st *testing.T) {
		h := newHarness(ctrl, testConf())
		defer h.core.Stop()

		a := test_util.Announcement("10.0.0.5", 1)
		id, _ := device.StableID(a.Token)

		connected := h.listen(event.ConnectedEventType)
		ready := h.listen(event.ReadyEventType)
		messages := h.listen(event.MessageEventType)
		trackLoaded := h.listen(event.TrackLoadedEventType)

		session, fileTransfer := h.expectConnect(a)
		msgChan, playerChan := h.expectBringUp(session, a)

		go h.core.Monitor()

		h.core.HandleDevice(a)

		evt := receive(st, connected)
		assert.Equal(st, a, evt.Payload.(event.ConnectedPayload).Announcement)

		evt = receive(st, ready)
		assert.Equal(st, []string{id}, evt.Payload.(event.ReadyPayload).Devices)

		select {
		case <-h.core.Ready():
		default:
			st.Fatal("ready channel not closed")
		}

		status, ok := h.core.StatusOf(a)
		assert.True(st, ok)
		assert.Equal(st, connection.StatusConnected, status)

		msg := service.Message{Name: "/Engine/Deck1/Play", Value: true}
		msgChan <- msg

		evt = receive(st, messages)
		payload := evt.Payload.(event.MessagePayload)
		assert.Equal(st, a, payload.Announcement)
		assert.Equal(st, msg, payload.Message)

		playerStatus := service.PlayerStatus{DeviceID: id, Deck: "1", Title: "Song"}
		playerChan <- service.PlayerEvent{Type: service.TrackLoaded, Status: playerStatus}

		evt = receive(st, trackLoaded)
		assert.Equal(st, playerStatus, evt.Payload)

		fileTransfer.EXPECT().WaitTillAvailable(gomock.Any()).Return(nil)
		fileTransfer.EXPECT().GetFile(gomock.Any(), "/usb/track.mp3").Return([]byte("audio"), nil)

		data, err := h.core.DownloadFile(context.Background(), id, "/usb/track.mp3")

		assert.NoError(st, err)
		assert.Equal(st, []byte("audio"), data)
	})

	t.Run("marks device failed after exhausting attempts", func(st *testing.T) {
		h := newHarness(ctrl, testConf())
		defer h.core.Stop()

		a := test_util.Announcement("10.0.0.5", 2)

		connected := h.listen(event.ConnectedEventType)
		failed := h.listen(event.DeviceFailedEventType)
		ready := h.listen(event.ReadyEventType)

		h.dialer.EXPECT().
			Connect(gomock.Any(), a).
			Return(nil, errors.New("connection refused")).
			Times(2)

		go h.core.Monitor()

		h.core.HandleDevice(a)

		evt := receive(st, failed)
		payload := evt.Payload.(event.DeviceFailedPayload)

		assert.Equal(st, a, payload.Announcement)
		assert.ErrorIs(st, payload.Err, exception.ErrConnectionFailed)
		assert.ErrorIs(st, payload.Err, exception.ErrTransientConnect)

		h.core.Wait()

		status, _ := h.core.StatusOf(a)
		assert.Equal(st, connection.StatusFailed, status)
		assert.Empty(st, h.core.Devices())
		assert.Equal(st, 0, len(connected))

		// a failed device does not block readiness
		evt = receive(st, ready)
		assert.Empty(st, evt.Payload.(event.ReadyPayload).Devices)
	})

	t.Run("retries until a connection succeeds", func(st *testing.T) {
		conf := testConf()
		conf.MaxRetries = 4

		h := newHarness(ctrl, conf)
		defer h.core.Stop()

		a := test_util.Announcement("10.0.0.5", 3)

		connected := h.listen(event.ConnectedEventType)

		session := mock_transport.NewMockSession(ctrl)
		fileTransfer := mock_service.NewMockFileTransfer(ctrl)

		gomock.InOrder(
			h.dialer.EXPECT().Connect(gomock.Any(), a).Return(nil, errors.New("busy")),
			h.dialer.EXPECT().Connect(gomock.Any(), a).Return(nil, errors.New("busy")),
			h.dialer.EXPECT().Connect(gomock.Any(), a).Return(session, nil),
		)

		session.EXPECT().FileTransfer(gomock.Any()).Return(fileTransfer, nil)
		h.db.EXPECT().DownloadSourcesFromDevice(gomock.Any(), a, fileTransfer).Return(nil, nil)

		h.core.HandleDevice(a)
		h.core.Wait()

		receive(st, connected)
		assert.Equal(st, 0, len(connected))

		status, _ := h.core.StatusOf(a)
		assert.Equal(st, connection.StatusConnected, status)
		assert.Equal(st, 1, len(h.core.Devices()))
	})

	t.Run("closes session and retries when file transfer fails", func(st *testing.T) {
		h := newHarness(ctrl, testConf())
		defer h.core.Stop()

		a := test_util.Announcement("10.0.0.5", 4)

		badSession := mock_transport.NewMockSession(ctrl)
		goodSession := mock_transport.NewMockSession(ctrl)
		fileTransfer := mock_service.NewMockFileTransfer(ctrl)

		gomock.InOrder(
			h.dialer.EXPECT().Connect(gomock.Any(), a).Return(badSession, nil),
			h.dialer.EXPECT().Connect(gomock.Any(), a).Return(goodSession, nil),
		)

		badSession.EXPECT().FileTransfer(gomock.Any()).Return(nil, errors.New("timeout"))
		badSession.EXPECT().Disconnect().Return(nil)
		goodSession.EXPECT().FileTransfer(gomock.Any()).Return(fileTransfer, nil)
		h.db.EXPECT().DownloadSourcesFromDevice(gomock.Any(), a, fileTransfer).Return(nil, nil)

		h.core.HandleDevice(a)
		h.core.Wait()

		status, _ := h.core.StatusOf(a)
		assert.Equal(st, connection.StatusConnected, status)
	})

	t.Run("does not retry handled devices", func(st *testing.T) {
		h := newHarness(ctrl, testConf())
		defer h.core.Stop()

		connectedDevice := test_util.Announcement("10.0.0.5", 5)
		failedDevice := test_util.Announcement("10.0.0.6", 6)

		connected := h.listen(event.ConnectedEventType)

		h.expectConnect(connectedDevice)
		h.dialer.EXPECT().
			Connect(gomock.Any(), failedDevice).
			Return(nil, errors.New("refused")).
			Times(2)

		h.core.HandleDevice(connectedDevice)
		h.core.HandleDevice(failedDevice)
		h.core.Wait()

		receive(st, connected)

		reannounced := connectedDevice
		reannounced.Software.Version = "4.0.0"

		h.core.HandleDevice(connectedDevice)
		h.core.HandleDevice(reannounced)
		h.core.HandleDevice(failedDevice)
		h.core.Wait()

		assert.Equal(st, 0, len(connected))
		assert.Equal(st, 2, len(h.core.Statuses()))
	})

	t.Run("brings up only the newest session for a device seen on a new port", func(st *testing.T) {
		h := newHarness(ctrl, testConf())
		defer h.core.Stop()

		first := test_util.Announcement("10.0.0.5", 19)
		moved := first
		moved.Port = 50011

		id, _ := device.StableID(first.Token)

		connected := h.listen(event.ConnectedEventType)
		ready := h.listen(event.ReadyEventType)
		fatal := h.listen(event.FatalErrorEventType)

		firstSession, _ := h.expectConnect(first)
		firstSession.EXPECT().Disconnect().Return(nil)

		movedSession, _ := h.expectConnect(moved)
		h.expectBringUp(movedSession, moved)

		h.core.HandleDevice(first)
		receive(st, connected)

		h.core.HandleDevice(moved)
		receive(st, connected)

		go h.core.Monitor()

		evt := receive(st, ready)
		assert.Equal(st, []string{id}, evt.Payload.(event.ReadyPayload).Devices)

		assertNoEvent(st, fatal, time.Millisecond*60)

		devices := h.core.Devices()
		require.Len(st, devices, 1)
		assert.Equal(st, moved, devices[0].Announcement)
	})

	t.Run("ignores own and non player announcements", func(st *testing.T) {
		conf := testConf()
		conf.ActingAs.Source = "deckhand"

		h := newHarness(ctrl, conf)
		defer h.core.Stop()

		own := test_util.Announcement("10.0.0.5", 7)
		own.Source = "deckhand"

		analyzer := test_util.Announcement("10.0.0.6", 8)
		analyzer.Software.Name = "OfflineAnalyzer"

		h.core.HandleDevice(own)
		h.core.HandleDevice(analyzer)
		h.core.Wait()

		assert.Empty(st, h.core.Statuses())
	})

	t.Run("drops announcements with malformed tokens", func(st *testing.T) {
		h := newHarness(ctrl, testConf())
		defer h.core.Stop()

		a := test_util.Announcement("10.0.0.5", 9)
		a.Token = []byte{1, 2, 3}

		h.core.HandleDevice(a)
		h.core.Wait()

		_, ok := h.core.StatusOf(a)

		assert.False(st, ok)
	})

	t.Run("database download failure does not fail the device", func(st *testing.T) {
		h := newHarness(ctrl, testConf())
		defer h.core.Stop()

		a := test_util.Announcement("10.0.0.5", 10)

		session := mock_transport.NewMockSession(ctrl)
		fileTransfer := mock_service.NewMockFileTransfer(ctrl)

		h.dialer.EXPECT().Connect(gomock.Any(), a).Return(session, nil)
		session.EXPECT().FileTransfer(gomock.Any()).Return(fileTransfer, nil)
		h.db.EXPECT().
			DownloadSourcesFromDevice(gomock.Any(), a, fileTransfer).
			Return(nil, errors.New("corrupt"))

		h.core.HandleDevice(a)
		h.core.Wait()

		status, _ := h.core.StatusOf(a)
		assert.Equal(st, connection.StatusConnected, status)
	})

	t.Run("skips database download when disabled", func(st *testing.T) {
		conf := testConf()
		download := false
		conf.DownloadDbSources = &download

		h := newHarness(ctrl, conf)
		defer h.core.Stop()

		a := test_util.Announcement("10.0.0.5", 11)

		session := mock_transport.NewMockSession(ctrl)
		fileTransfer := mock_service.NewMockFileTransfer(ctrl)

		h.dialer.EXPECT().Connect(gomock.Any(), a).Return(session, nil)
		session.EXPECT().FileTransfer(gomock.Any()).Return(fileTransfer, nil)

		h.core.HandleDevice(a)
		h.core.Wait()

		status, _ := h.core.StatusOf(a)
		assert.Equal(st, connection.StatusConnected, status)
	})

	t.Run("fires ready once after all devices settle", func(st *testing.T) {
		conf := testConf()
		conf.BarrierInterval = time.Millisecond * 150

		h := newHarness(ctrl, conf)
		defer h.core.Stop()

		fast := test_util.Announcement("10.0.0.5", 12)
		slow := test_util.Announcement("10.0.0.6", 13)
		fastID, _ := device.StableID(fast.Token)
		slowID, _ := device.StableID(slow.Token)

		ready := h.listen(event.ReadyEventType)

		for _, d := range []struct {
			a     device.Announcement
			delay time.Duration
		}{
			{a: fast, delay: time.Millisecond * 5},
			{a: slow, delay: time.Millisecond * 120},
		} {
			session := mock_transport.NewMockSession(ctrl)
			fileTransfer := mock_service.NewMockFileTransfer(ctrl)
			delay := d.delay

			h.dialer.EXPECT().Connect(gomock.Any(), d.a).DoAndReturn(
				func(context.Context, device.Announcement) (transport.Session, error) {
					time.Sleep(delay)
					return session, nil
				},
			)
			session.EXPECT().FileTransfer(gomock.Any()).Return(fileTransfer, nil)
			h.db.EXPECT().DownloadSourcesFromDevice(gomock.Any(), d.a, fileTransfer).Return(nil, nil)
			h.expectBringUp(session, d.a)
		}

		go h.core.Monitor()

		h.core.HandleDevice(fast)
		h.core.HandleDevice(slow)

		evt := receive(st, ready)
		ids := evt.Payload.(event.ReadyPayload).Devices
		sort.Strings(ids)

		expected := []string{fastID, slowID}
		sort.Strings(expected)

		assert.Equal(st, expected, ids)

		assertNoEvent(st, ready, conf.BarrierInterval*3)
	})

	t.Run("never fires ready without devices", func(st *testing.T) {
		conf := testConf()
		conf.BarrierInterval = time.Millisecond * 10

		h := newHarness(ctrl, conf)
		defer h.core.Stop()

		ready := h.listen(event.ReadyEventType)

		go h.core.Monitor()

		assertNoEvent(st, ready, time.Millisecond*100)

		select {
		case <-h.core.Ready():
			st.Fatal("ready channel closed without devices")
		default:
		}
	})

	t.Run("re-arms barrier for late devices", func(st *testing.T) {
		h := newHarness(ctrl, testConf())
		defer h.core.Stop()

		early := test_util.Announcement("10.0.0.5", 14)
		late := test_util.Announcement("10.0.0.6", 15)
		earlyID, _ := device.StableID(early.Token)
		lateID, _ := device.StableID(late.Token)

		ready := h.listen(event.ReadyEventType)

		earlySession, _ := h.expectConnect(early)
		h.expectBringUp(earlySession, early)

		go h.core.Monitor()

		h.core.HandleDevice(early)

		evt := receive(st, ready)
		assert.Equal(st, []string{earlyID}, evt.Payload.(event.ReadyPayload).Devices)

		lateSession, _ := h.expectConnect(late)
		h.expectBringUp(lateSession, late)

		h.core.HandleDevice(late)

		evt = receive(st, ready)
		assert.Equal(st, []string{lateID}, evt.Payload.(event.ReadyPayload).Devices)

		assertNoEvent(st, ready, time.Millisecond*60)
	})

	t.Run("reports state sync bring-up failure", func(st *testing.T) {
		h := newHarness(ctrl, testConf())
		defer h.core.Stop()

		a := test_util.Announcement("10.0.0.5", 16)

		ready := h.listen(event.ReadyEventType)
		fatal := h.listen(event.FatalErrorEventType)

		session, _ := h.expectConnect(a)
		session.EXPECT().StateMap(gomock.Any()).Return(nil, errors.New("rejected"))

		go h.core.Monitor()

		h.core.HandleDevice(a)

		evt := receive(st, fatal)
		assert.ErrorContains(st, evt.Payload.(error), "rejected")

		evt = receive(st, ready)
		assert.Empty(st, evt.Payload.(event.ReadyPayload).Devices)
	})

	t.Run("returns device not found for unknown download", func(st *testing.T) {
		h := newHarness(ctrl, testConf())
		defer h.core.Stop()

		data, err := h.core.DownloadFile(context.Background(), "missing", "/usb/track.mp3")

		assert.Nil(st, data)
		assert.ErrorIs(st, err, exception.ErrDeviceNotFound)
	})

	t.Run("disconnects all devices", func(st *testing.T) {
		h := newHarness(ctrl, testConf())
		defer h.core.Stop()

		a := test_util.Announcement("10.0.0.5", 17)

		session, _ := h.expectConnect(a)
		session.EXPECT().Disconnect().Return(nil)

		h.core.HandleDevice(a)
		h.core.Wait()

		assert.Equal(st, 1, len(h.core.Devices()))
		assert.NoError(st, h.core.DisconnectAll())
		assert.Empty(st, h.core.Devices())
	})

	t.Run("monitors discovery until stopped", func(st *testing.T) {
		h := newHarness(ctrl, testConf())

		mockListener := mock_discovery.NewMockListener(ctrl)

		c := core.New(
			testConf(),
			h.dialer,
			h.players,
			h.db,
			discovery.NewListenerService(mockListener),
			event.NewEventManager(),
		)

		a := test_util.Announcement("10.0.0.5", 18)

		connected := make(chan event.Event, 1)
		c.RegisterEventListener(event.ConnectedEventType, connected)

		mockListener.EXPECT().Listen(gomock.Any()).DoAndReturn(
			func(resultChan chan device.Announcement) error {
				go func() {
					resultChan <- a
				}()
				return nil
			},
		)
		mockListener.EXPECT().Stop()

		session, _ := h.expectConnect(a)
		session.EXPECT().StateMap(gomock.Any()).Return(nil, errors.New("closed")).AnyTimes()

		errChan := make(chan error)

		go func() {
			errChan <- c.Monitor()
		}()

		receive(st, connected)

		c.Stop()
		c.Wait()

		assert.ErrorIs(st, <-errChan, context.Canceled)
	})
}

func TestCreateNewAppCore(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("creates core backed by sqlite catalog", func(st *testing.T) {
		conf := testConf()
		conf.CacheDir = st.TempDir()
		conf.DatabaseFile = path.Join(st.TempDir(), "catalog.db")

		c, err := core.CreateNewAppCore(conf, core.Dependencies{
			Listener: mock_discovery.NewMockListener(ctrl),
			Dialer:   mock_transport.NewMockDialer(ctrl),
			Players:  mock_service.NewMockPlayerFactory(ctrl),
		})

		require.NoError(st, err)
		assert.Equal(st, conf, c.Conf())
		assert.Empty(st, c.Statuses())
	})

	t.Run("requires dialer and player factory", func(st *testing.T) {
		_, err := core.CreateNewAppCore(testConf(), core.Dependencies{})

		assert.Error(st, err)
	})

	t.Run("rejects invalid config", func(st *testing.T) {
		conf := testConf()
		conf.MaxRetries = 0

		_, err := core.CreateNewAppCore(conf, core.Dependencies{
			Dialer:  mock_transport.NewMockDialer(ctrl),
			Players: mock_service.NewMockPlayerFactory(ctrl),
		})

		assert.Error(st, err)
	})
}
