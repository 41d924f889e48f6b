// Package stage round-trips generated arrays through a scratch storage
// backend before they are sorted.
package stage

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ErrUnknownStore is returned by Open for unrecognized backend names.
var ErrUnknownStore = errors.New("unknown storage")

// Kind names a staging backend.
type Kind string

const (
	// Memory means arrays are sorted straight from the generator with no staging.
	Memory Kind = "memory"
	File   Kind = "file"
	Bolt   Kind = "bbolt"
	Badger Kind = "badger"
	Pebble Kind = "pebble"
)

// Kinds lists every accepted storage name.
var Kinds = []Kind{Memory, File, Bolt, Badger, Pebble}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	switch k {
	case Memory, File, Bolt, Badger, Pebble:
		return true
	}
	return false
}

// Store holds one staged array at a time, as encoded element values in index order.
type Store interface {
	Name() string
	// Stage replaces whatever was staged before.
	Stage(values [][]byte) error
	Load() ([][]byte, error)
	// Footprint is the on-disk size of the staged data in bytes.
	Footprint() (int64, error)
	// Close releases the backend and removes its scratch files.
	Close() error
}

// Open creates a backend of the given kind under dir. Memory has no backend.
func Open(kind Kind, dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create scratch dir %s", dir)
	}
	var (
		s   Store
		err error
	)
	switch kind {
	case File:
		s, err = orNil[*FileStore](OpenFile(filepath.Join(dir, "staged.txt")))
	case Bolt:
		s, err = orNil[*BoltStore](OpenBolt(filepath.Join(dir, "staged.db")))
	case Badger:
		s, err = orNil[*BadgerStore](OpenBadger(filepath.Join(dir, "badger")))
	case Pebble:
		s, err = orNil[*PebbleStore](OpenPebble(filepath.Join(dir, "pebble")))
	default:
		return nil, errors.Wrapf(ErrUnknownStore, "%q", string(kind))
	}
	return s, err
}

// orNil keeps a failed constructor's nil pointer out of the Store interface.
func orNil[S Store](s S, err error) (Store, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// indexKey encodes an element index so that byte order equals index order.
func indexKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))
	return key
}

func dirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}
