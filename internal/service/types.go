package service

// Message a single state synchronization update
type Message struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// PlayerEventType represents the kinds of events a Player emits
type PlayerEventType string

const (
	TrackLoaded  PlayerEventType = "track-loaded"
	StateChanged PlayerEventType = "state-changed"
	NowPlaying   PlayerEventType = "now-playing"
)

// PlayerStatus snapshot of a single deck on a player
type PlayerStatus struct {
	DeviceID   string  `json:"deviceId"`
	Address    string  `json:"address"`
	Port       uint16  `json:"port"`
	Deck       string  `json:"deck"`
	Source     string  `json:"source"`
	TrackPath  string  `json:"trackPath"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Playing    bool    `json:"playing"`
	Master     bool    `json:"master"`
	Fader      float64 `json:"fader"`
	CurrentBPM float64 `json:"currentBpm"`
}

// PlayerEvent an event emitted by a Player
type PlayerEvent struct {
	Type   PlayerEventType
	Status PlayerStatus
}
