package database

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/inovacc/clientdir/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketConfig = "config" // key: "config" -> Config JSON
	boltKeyConfig    = "config"
)

type Bolt struct {
	db *bbolt.DB
}

// NewBolt opens (or creates) a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketConfig))
		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{db: instance}, nil
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) Ping() error {
	return b.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(boltBucketConfig)) == nil {
			return errors.New("config bucket missing")
		}

		return nil
	})
}

// GetConfig returns the saved configuration, or the defaults when nothing
// has been saved yet.
func (b *Bolt) GetConfig() (*model.Config, error) {
	var cfg *model.Config

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))
		v := bucket.Get([]byte(boltKeyConfig))

		if v == nil {
			// Return default config if not found
			defaultCfg := model.DefaultConfig()
			cfg = &defaultCfg

			return nil
		}

		var c model.Config
		if err := json.Unmarshal(v, &c); err != nil {
			return err
		}

		cfg = &c

		return nil
	})

	return cfg, err
}

// HasConfig reports whether a configuration has been saved.
func (b *Bolt) HasConfig() (bool, error) {
	var found bool

	err := b.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket([]byte(boltBucketConfig)).Get([]byte(boltKeyConfig)) != nil
		return nil
	})

	return found, err
}

func (b *Bolt) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))

		return bucket.Put([]byte(boltKeyConfig), data)
	})
}

// ResetConfig removes the saved configuration so the defaults apply again.
func (b *Bolt) ResetConfig() error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketConfig)).Delete([]byte(boltKeyConfig))
	})
}
