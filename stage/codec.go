package stage

import (
	"strconv"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"sortbench/arraygen"
)

// ErrCorruptValue is returned when a stored value does not decode back to an element.
var ErrCorruptValue = errors.New("corrupt staged value")

// Codec converts elements of one kind to and from their stored text form.
type Codec[T constraints.Ordered] struct {
	Append func(dst []byte, v T) []byte
	Parse  func(b []byte) (T, error)
}

// CodecFor returns the codec for kind. T must be the Go type kind generates.
func CodecFor[T constraints.Ordered](kind arraygen.Kind) (Codec[T], error) {
	var c any
	switch kind {
	case arraygen.Int:
		c = Codec[int32]{
			Append: func(dst []byte, v int32) []byte { return strconv.AppendInt(dst, int64(v), 10) },
			Parse: func(b []byte) (int32, error) {
				v, err := strconv.ParseInt(string(b), 10, 32)
				return int32(v), err
			},
		}
	case arraygen.Long:
		c = Codec[int64]{
			Append: func(dst []byte, v int64) []byte { return strconv.AppendInt(dst, v, 10) },
			Parse:  func(b []byte) (int64, error) { return strconv.ParseInt(string(b), 10, 64) },
		}
	case arraygen.Float:
		c = Codec[float32]{
			Append: func(dst []byte, v float32) []byte { return strconv.AppendFloat(dst, float64(v), 'g', -1, 32) },
			Parse: func(b []byte) (float32, error) {
				v, err := strconv.ParseFloat(string(b), 32)
				return float32(v), err
			},
		}
	case arraygen.Double:
		c = Codec[float64]{
			Append: func(dst []byte, v float64) []byte { return strconv.AppendFloat(dst, v, 'g', -1, 64) },
			Parse:  func(b []byte) (float64, error) { return strconv.ParseFloat(string(b), 64) },
		}
	case arraygen.Char:
		c = Codec[rune]{
			Append: utf8.AppendRune,
			Parse: func(b []byte) (rune, error) {
				r, n := utf8.DecodeRune(b)
				if r == utf8.RuneError || n != len(b) {
					return 0, errors.Newf("invalid char %q", b)
				}
				return r, nil
			},
		}
	case arraygen.String:
		c = Codec[string]{
			Append: func(dst []byte, v string) []byte { return append(dst, v...) },
			Parse:  func(b []byte) (string, error) { return string(b), nil },
		}
	default:
		return Codec[T]{}, errors.Mark(errors.Wrapf(arraygen.ErrUnknownKind, "%q", string(kind)), arraygen.ErrInvalidArgument)
	}

	codec, ok := c.(Codec[T])
	if !ok {
		var zero T
		return Codec[T]{}, errors.Wrapf(arraygen.ErrUnsupportedKind, "%s values as %T", kind, zero)
	}
	return codec, nil
}

// StageArray encodes data and stages it in s.
func StageArray[T constraints.Ordered](s Store, c Codec[T], data []T) error {
	values := make([][]byte, len(data))
	for i, v := range data {
		values[i] = c.Append(nil, v)
	}
	return s.Stage(values)
}

// LoadArray reads back what StageArray staged.
func LoadArray[T constraints.Ordered](s Store, c Codec[T]) ([]T, error) {
	values, err := s.Load()
	if err != nil {
		return nil, err
	}
	data := make([]T, len(values))
	for i, b := range values {
		v, err := c.Parse(b)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "%s element %d", s.Name(), i), ErrCorruptValue)
		}
		data[i] = v
	}
	return data, nil
}
