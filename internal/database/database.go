package database

import (
	"fmt"
	"path/filepath"

	"github.com/inovacc/clientdir/internal/application"
	"github.com/inovacc/clientdir/internal/encoding"
	"github.com/inovacc/clientdir/internal/model"
)

// FileName is the database file inside the application directory.
const FileName = "clientdir.bolt"

// Store defines the database operations used by the app.
type Store interface {
	Ping() error
	GetConfig() (*model.Config, error)
	HasConfig() (bool, error)
	SaveConfig(cfg *model.Config) error
	ResetConfig() error
	Close() error
}

// DefaultPath returns the database path inside the application directory.
func DefaultPath() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, FileName), nil
}

// Open opens the database at path, creating it and its directory if needed.
func Open(path string) (Store, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	db, err := NewBolt(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database %s is not usable: %w", path, err)
	}

	return db, nil
}
