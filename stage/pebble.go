package stage

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// keyspaceEnd sorts after every 8-byte index key.
var keyspaceEnd = bytes.Repeat([]byte{0xff}, 9)

// PebbleStore keeps the staged array in a PebbleDB directory.
type PebbleStore struct {
	db  *pebble.DB
	dir string
}

// OpenPebble opens a Pebble store in dir.
func OpenPebble(dir string) (*PebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "open pebble")
	}
	return &PebbleStore{db: db, dir: dir}, nil
}

func (s *PebbleStore) Name() string { return string(Pebble) }

func (s *PebbleStore) Stage(values [][]byte) error {
	batch := s.db.NewBatch()
	defer batch.Close()

	if err := batch.DeleteRange(indexKey(0), keyspaceEnd, nil); err != nil {
		return errors.Wrap(err, "pebble delete range")
	}
	for i, v := range values {
		if err := batch.Set(indexKey(i), v, nil); err != nil {
			return errors.Wrapf(err, "pebble set %d", i)
		}
	}
	return errors.Wrap(batch.Commit(pebble.NoSync), "pebble commit")
}

func (s *PebbleStore) Load() ([][]byte, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "pebble iter")
	}
	var values [][]byte
	for iter.First(); iter.Valid(); iter.Next() {
		values = append(values, bytes.Clone(iter.Value()))
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrap(err, "pebble load")
	}
	return values, nil
}

func (s *PebbleStore) Footprint() (int64, error) {
	return dirSize(s.dir)
}

func (s *PebbleStore) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "close pebble")
	}
	return errors.Wrap(os.RemoveAll(s.dir), "remove pebble dir")
}
