package database

import (
	"errors"

	"github.com/robgonnella/deckhand/internal/exception"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// OpenSqlite opens the catalog database file and migrates the schema
func OpenSqlite(dbFile string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Source{}); err != nil {
		return nil, err
	}

	return db, nil
}

// NewSqliteRepo returns a new source catalog backed by sqlite
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{
		db: db,
	}
}

// GetAllSources returns all sources in the catalog
func (r *SqliteRepo) GetAllSources() ([]*Source, error) {
	sources := []*Source{}

	if result := r.db.Order("id").Find(&sources); result.Error != nil {
		return nil, result.Error
	}

	return sources, nil
}

// GetSourcesByDevice returns all sources downloaded from a single device
func (r *SqliteRepo) GetSourcesByDevice(deviceID string) ([]*Source, error) {
	sources := []*Source{}

	result := r.db.Where("device_id = ?", deviceID).Order("name").Find(&sources)

	if result.Error != nil {
		return nil, result.Error
	}

	return sources, nil
}

// GetSource returns a single source by id
func (r *SqliteRepo) GetSource(id string) (*Source, error) {
	source := Source{}

	if result := r.db.First(&source, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &source, nil
}

// SaveSource creates or updates a source
func (r *SqliteRepo) SaveSource(source *Source) (*Source, error) {
	if source.ID == "" {
		return nil, errors.New("source id cannot be empty")
	}

	if result := r.db.Save(source); result.Error != nil {
		return nil, result.Error
	}

	return source, nil
}

// RemoveSource deletes a source from the catalog
func (r *SqliteRepo) RemoveSource(id string) error {
	if id == "" {
		return errors.New("source id cannot be empty")
	}

	return r.db.Delete(&Source{ID: id}).Error
}
