// Package boltkv persists the committee state in an embedded BoltDB file.
//
// Each collection lives in its own bucket as a single JSON snapshot blob
// under a fixed key. Repositories therefore load and save whole collections;
// the service layer does read-modify-write under its session lock, so the
// store never needs per-record keys or queries.
package boltkv

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	bolt "github.com/boltdb/bolt"
)

const (
	settingsBucket = "settings"
	membersBucket  = "members"
	cyclesBucket   = "cycles"
	paymentsBucket = "payments"

	// snapshotKey is the single key each bucket stores its blob under.
	snapshotKey = "snapshot"
)

var allBuckets = []string{settingsBucket, membersBucket, cyclesBucket, paymentsBucket}

// Store wraps the BoltDB database shared by all repositories.
type Store struct {
	db     *bolt.DB
	logger *slog.Logger
}

// Open opens (or creates) the database file at path and ensures every bucket
// exists. The timeout guards against a second process holding the file lock.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, logger: logger}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// loadSnapshot reads and decodes the blob of the given bucket. A missing
// blob yields the fallback, and so does a corrupt one: decoding goes into a
// fresh value that is discarded wholesale on any unmarshal error, so a blob
// that fails halfway through can never leak a partially decoded collection.
// Corruption is logged and treated as missing rather than failing the read,
// so one bad write cannot brick the whole application.
func loadSnapshot[T any](s *Store, bucket string, fallback T) (T, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucket)).Get([]byte(snapshotKey)); v != nil {
			// Bolt's value is only valid inside the transaction.
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return fallback, err
	}
	if raw == nil {
		return fallback, nil
	}

	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.logger.Warn("Discarding corrupt snapshot blob",
			slog.String("bucket", bucket),
			slog.String("error", err.Error()),
		)
		return fallback, nil
	}
	return decoded, nil
}

// saveSnapshot encodes in and replaces the bucket's blob in one transaction.
func (s *Store) saveSnapshot(bucket string, in any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", bucket, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put([]byte(snapshotKey), raw)
	})
}
