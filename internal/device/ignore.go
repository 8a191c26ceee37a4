package device

import (
	"strings"

	"github.com/robgonnella/deckhand/internal/config"
)

// IgnorePolicy decides which announcements are never connected to
type IgnorePolicy struct {
	ownSource        string
	sources          map[string]struct{}
	softwareNames    map[string]struct{}
	softwarePrefixes []string
}

// NewIgnorePolicy returns a new IgnorePolicy for the given configuration
func NewIgnorePolicy(conf config.Config) *IgnorePolicy {
	p := &IgnorePolicy{
		ownSource:        conf.ActingAs.Source,
		sources:          map[string]struct{}{},
		softwareNames:    map[string]struct{}{},
		softwarePrefixes: conf.Ignore.SoftwarePrefixes,
	}

	for _, s := range conf.Ignore.Sources {
		p.sources[s] = struct{}{}
	}

	for _, n := range conf.Ignore.SoftwareNames {
		p.softwareNames[n] = struct{}{}
	}

	return p
}

// ShouldIgnore returns true for our own announcements, blacklisted sources,
// and software that is known not to be a controllable player
func (p *IgnorePolicy) ShouldIgnore(a Announcement) bool {
	if p.ownSource != "" && a.Source == p.ownSource {
		return true
	}

	if _, ok := p.sources[a.Source]; ok {
		return true
	}

	if _, ok := p.softwareNames[a.Software.Name]; ok {
		return true
	}

	for _, prefix := range p.softwarePrefixes {
		if prefix != "" && strings.HasPrefix(a.Software.Name, prefix) {
			return true
		}
	}

	return false
}
