package device

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/robgonnella/deckhand/internal/exception"
)

// TokenLength number of bytes in a device token
const TokenLength = 16

// Software identifies the software a device announces itself with
type Software struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Announcement represents a single discovery broadcast received from a
// device on the network
type Announcement struct {
	Address  string   `json:"address"`
	Port     uint16   `json:"port"`
	Source   string   `json:"source"`
	Software Software `json:"software"`
	Token    []byte   `json:"token"`
}

// Key returns the deterministic connection key for an announcement. Fields
// are length prefixed so distinct tuples can never collide.
func Key(a Announcement) string {
	parts := []string{
		a.Address,
		fmt.Sprintf("%d", a.Port),
		a.Source,
		a.Software.Name,
	}

	b := strings.Builder{}

	for i, p := range parts {
		if i > 0 {
			b.WriteString(":")
		}

		b.WriteString(fmt.Sprintf("%d/%s", len(p), p))
	}

	return b.String()
}

// StableID decodes a device token into a canonical dashed hex id
// (8-4-4-4-12), independent of the device's current network address
func StableID(token []byte) (string, error) {
	if len(token) != TokenLength {
		return "", fmt.Errorf(
			"%w: expected %d bytes got %d",
			exception.ErrMalformedToken,
			TokenLength,
			len(token),
		)
	}

	id, err := uuid.FromBytes(token)

	if err != nil {
		return "", fmt.Errorf("%w: %s", exception.ErrMalformedToken, err)
	}

	return id.String(), nil
}
