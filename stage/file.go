package stage

import (
	"bufio"
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
)

// ErrNewlineInValue is returned when a value cannot be written as a single line.
var ErrNewlineInValue = errors.New("value contains a newline")

// FileStore writes one value per line to a plain text file.
type FileStore struct {
	path string
}

// OpenFile creates a line-per-value store at path.
func OpenFile(path string) (*FileStore, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "file store")
	}
	return &FileStore{path: path}, f.Close()
}

func (s *FileStore) Name() string { return string(File) }

func (s *FileStore) Stage(values [][]byte) error {
	file, err := os.Create(s.path)
	if err != nil {
		return errors.Wrap(err, "file store")
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 64*1024)
	for i, v := range values {
		if bytes.IndexByte(v, '\n') >= 0 {
			return errors.Wrapf(ErrNewlineInValue, "element %d", i)
		}
		writer.Write(v)
		writer.WriteByte('\n')
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrap(err, "file store flush")
	}
	return file.Close()
}

func (s *FileStore) Load() ([][]byte, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "file store")
	}
	defer file.Close()

	var values [][]byte
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)
	for scanner.Scan() {
		values = append(values, bytes.Clone(scanner.Bytes()))
	}
	return values, errors.Wrap(scanner.Err(), "file store scan")
}

func (s *FileStore) Footprint() (int64, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

func (s *FileStore) Close() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "file store")
	}
	return nil
}
