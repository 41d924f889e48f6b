package stage

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

var boltBucket = []byte("staged")

// BoltStore keeps the staged array in a single bbolt bucket.
type BoltStore struct {
	db   *bbolt.DB
	path string
}

// OpenBolt opens a bbolt database file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open bbolt")
	}
	return &BoltStore{db: db, path: path}, nil
}

func (s *BoltStore) Name() string { return string(Bolt) }

func (s *BoltStore) Stage(values [][]byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(boltBucket) != nil {
			if err := tx.DeleteBucket(boltBucket); err != nil {
				return err
			}
		}
		b, err := tx.CreateBucket(boltBucket)
		if err != nil {
			return err
		}
		for i, v := range values {
			if err := b.Put(indexKey(i), v); err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrap(err, "bbolt stage")
}

func (s *BoltStore) Load() ([][]byte, error) {
	var values [][]byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(boltBucket)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		// values are only valid inside the transaction
		for k, v := c.First(); k != nil; k, v = c.Next() {
			values = append(values, bytes.Clone(v))
		}
		return nil
	})
	return values, errors.Wrap(err, "bbolt load")
}

func (s *BoltStore) Footprint() (int64, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

func (s *BoltStore) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "close bbolt")
	}
	return errors.Wrap(os.Remove(s.path), "remove bbolt file")
}
