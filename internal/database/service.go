package database

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/robgonnella/deckhand/internal/device"
	"github.com/robgonnella/deckhand/internal/exception"
	"github.com/robgonnella/deckhand/internal/logger"
	"github.com/robgonnella/deckhand/internal/service"
)

// RemotePath location of a source's metadata database on the device
const RemotePath = "/%s/Engine Library/Database2/m.db"

// SourceService implements Service by fetching each source's database over
// the device's file transfer service into a local cache directory
type SourceService struct {
	cacheDir string
	repo     Repo
	log      logger.Logger
}

// NewSourceService returns a new *SourceService
func NewSourceService(cacheDir string, repo Repo) *SourceService {
	return &SourceService{
		cacheDir: cacheDir,
		repo:     repo,
		log:      logger.New().With("database"),
	}
}

// DownloadSourcesFromDevice downloads the metadata database for every
// source the device exposes and returns the names of those that succeeded.
// Sources that fail are logged and skipped.
func (s *SourceService) DownloadSourcesFromDevice(
	ctx context.Context,
	announcement device.Announcement,
	fileTransfer service.FileTransfer,
) ([]string, error) {
	deviceID, err := device.StableID(announcement.Token)

	if err != nil {
		return nil, err
	}

	if err := fileTransfer.WaitTillAvailable(ctx); err != nil {
		return nil, err
	}

	names, err := fileTransfer.Sources(ctx)

	if err != nil {
		return nil, fmt.Errorf("list sources for %s: %w", deviceID, err)
	}

	snapshot, err := json.Marshal(announcement)

	if err != nil {
		return nil, err
	}

	downloaded := []string{}

	for _, name := range names {
		source, err := s.downloadSource(ctx, deviceID, name, fileTransfer)

		if err != nil {
			s.log.Error().
				Err(err).
				Str("deviceId", deviceID).
				Str("source", name).
				Msg("failed to download source database")
			continue
		}

		source.Announcement = snapshot

		if _, err := s.repo.SaveSource(source); err != nil {
			s.log.Error().
				Err(err).
				Str("deviceId", deviceID).
				Str("source", name).
				Msg("failed to record source database")
			continue
		}

		s.log.Info().
			Str("deviceId", deviceID).
			Str("source", name).
			Int("size", source.Size).
			Msg("downloaded source database")

		downloaded = append(downloaded, name)
	}

	return downloaded, nil
}

func (s *SourceService) downloadSource(
	ctx context.Context,
	deviceID string,
	name string,
	fileTransfer service.FileTransfer,
) (*Source, error) {
	dirName, err := cacheName(name)

	if err != nil {
		return nil, err
	}

	if err := fileTransfer.WaitTillAvailable(ctx); err != nil {
		return nil, err
	}

	data, err := fileTransfer.GetFile(ctx, fmt.Sprintf(RemotePath, name))

	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.cacheDir, deviceID, dirName)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	localPath := filepath.Join(dir, "m.db")

	if err := os.WriteFile(localPath, data, 0644); err != nil {
		return nil, err
	}

	return &Source{
		ID:           deviceID + "/" + name,
		DeviceID:     deviceID,
		Name:         name,
		Path:         localPath,
		Size:         len(data),
		DownloadedAt: time.Now().UTC(),
	}, nil
}

// cacheName maps a device reported source name to a single directory name.
// Escaping keeps distinct names distinct.
func cacheName(name string) (string, error) {
	escaped := url.PathEscape(name)

	switch escaped {
	case "", ".", "..":
		return "", fmt.Errorf("%w: %q", exception.ErrInvalidSourceName, name)
	}

	return escaped, nil
}
