package database

import (
	"context"
	"time"

	"github.com/robgonnella/deckhand/internal/device"
	"github.com/robgonnella/deckhand/internal/service"
	"gorm.io/datatypes"
)

//go:generate mockgen -destination=../mock/database/mock_database.go -package=mock_database . Repo,Service

// Source a metadata database downloaded from one of a device's sources
type Source struct {
	ID           string `gorm:"primaryKey"`
	DeviceID     string `gorm:"index"`
	Name         string
	Path         string
	Size         int
	Announcement datatypes.JSON
	DownloadedAt time.Time
}

// Repo interface representing access to the downloaded source catalog
type Repo interface {
	GetAllSources() ([]*Source, error)
	GetSourcesByDevice(deviceID string) ([]*Source, error)
	GetSource(id string) (*Source, error)
	SaveSource(source *Source) (*Source, error)
	RemoveSource(id string) error
}

// Service downloads metadata databases from connected devices
type Service interface {
	DownloadSourcesFromDevice(
		ctx context.Context,
		announcement device.Announcement,
		fileTransfer service.FileTransfer,
	) ([]string, error)
}
