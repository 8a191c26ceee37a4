package connection

import (
	"sort"
	"sync"
)

// Status represents the lifecycle state of a device connection attempt
type Status string

const (
	StatusConnecting Status = "CONNECTING"
	StatusConnected  Status = "CONNECTED"
	StatusFailed     Status = "FAILED"
)

// Entry a single key and its current status
type Entry struct {
	Key    string
	Status Status
}

// Tracker maps device keys to connection status. Entries are created once
// as CONNECTING and may only move to a terminal status.
type Tracker struct {
	statuses map[string]Status
	mux      sync.RWMutex
}

// NewTracker returns a new empty Tracker
func NewTracker() *Tracker {
	return &Tracker{
		statuses: map[string]Status{},
		mux:      sync.RWMutex{},
	}
}

// StatusOf returns the status for key and whether the key has been seen
func (t *Tracker) StatusOf(key string) (Status, bool) {
	t.mux.RLock()
	defer t.mux.RUnlock()

	status, ok := t.statuses[key]

	return status, ok
}

// Begin marks key as CONNECTING if it has never been seen and reports
// whether the caller now owns the attempt for that key
func (t *Tracker) Begin(key string) bool {
	t.mux.Lock()
	defer t.mux.Unlock()

	if _, ok := t.statuses[key]; ok {
		return false
	}

	t.statuses[key] = StatusConnecting

	return true
}

// Transition moves key from one status to another only if it is currently
// in the expected status
func (t *Tracker) Transition(key string, from, to Status) bool {
	t.mux.Lock()
	defer t.mux.Unlock()

	current, ok := t.statuses[key]

	if !ok || current != from {
		return false
	}

	t.statuses[key] = to

	return true
}

// All returns a snapshot of every known key and status sorted by key
func (t *Tracker) All() []Entry {
	t.mux.RLock()
	defer t.mux.RUnlock()

	entries := make([]Entry, 0, len(t.statuses))

	for k, s := range t.statuses {
		entries = append(entries, Entry{Key: k, Status: s})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return entries
}

// Quiescent reports whether at least one device has been seen and none
// of them are still connecting
func Quiescent(entries []Entry) bool {
	if len(entries) == 0 {
		return false
	}

	for _, e := range entries {
		if e.Status == StatusConnecting {
			return false
		}
	}

	return true
}
