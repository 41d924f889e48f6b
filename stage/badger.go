package stage

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"
)

// BadgerStore keeps the staged array in a BadgerDB directory.
type BadgerStore struct {
	db  *badger.DB
	dir string
}

// OpenBadger opens a BadgerDB store in dir.
func OpenBadger(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}
	return &BadgerStore{db: db, dir: dir}, nil
}

func (s *BadgerStore) Name() string { return string(Badger) }

func (s *BadgerStore) Stage(values [][]byte) error {
	if err := s.db.DropAll(); err != nil {
		return errors.Wrap(err, "badger drop")
	}
	wb := s.db.NewWriteBatch()
	for i, v := range values {
		if err := wb.Set(indexKey(i), v); err != nil {
			wb.Cancel()
			return errors.Wrapf(err, "badger set %d", i)
		}
	}
	return errors.Wrap(wb.Flush(), "badger flush")
}

func (s *BadgerStore) Load() ([][]byte, error) {
	var values [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, v)
		}
		return nil
	})
	return values, errors.Wrap(err, "badger load")
}

func (s *BadgerStore) Footprint() (int64, error) {
	return dirSize(s.dir)
}

func (s *BadgerStore) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "close badger")
	}
	return errors.Wrap(os.RemoveAll(s.dir), "remove badger dir")
}
