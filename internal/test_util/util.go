package test_util

import (
	"path"
	"testing"

	"github.com/robgonnella/deckhand/internal/database"
	"github.com/robgonnella/deckhand/internal/device"
	"gorm.io/gorm"
)

// GetDBConnection returns a migrated sqlite catalog connection in a
// temporary directory owned by t
func GetDBConnection(t *testing.T) (*gorm.DB, error) {
	return database.OpenSqlite(path.Join(t.TempDir(), "catalog.db"))
}

// Token returns a valid 16 byte device token whose bytes all equal b
func Token(b byte) []byte {
	token := make([]byte, device.TokenLength)

	for i := range token {
		token[i] = b
	}

	return token
}

// Announcement returns a player announcement for address with a token
// derived from b
func Announcement(address string, b byte) device.Announcement {
	return device.Announcement{
		Address: address,
		Port:    50010,
		Source:  "JP11",
		Software: device.Software{
			Name:    "JP11",
			Version: "3.4.0",
		},
		Token: Token(b),
	}
}
