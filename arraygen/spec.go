package arraygen

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidArgument marks every construction failure of a Spec.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrInvalidSize      = errors.New("size must be positive")
	ErrUnknownStructure = errors.New("unknown structure")
	ErrUnknownKind      = errors.New("unknown type")
	// ErrUnsupportedKind is returned when a Go element type has no value mapping for a kind.
	ErrUnsupportedKind = errors.New("unsupported type class")
)

// Structure is the ordering pattern of a generated array.
type Structure string

const (
	BestCase    Structure = "bestCase"
	WorstCase   Structure = "worstCase"
	AverageCase Structure = "averageCase"
)

// Structures lists the recognized structures in the order the harness runs them.
var Structures = []Structure{BestCase, WorstCase, AverageCase}

func (s Structure) valid() bool {
	switch s {
	case BestCase, WorstCase, AverageCase:
		return true
	}
	return false
}

// Kind is the element type of a generated array.
type Kind string

const (
	Int    Kind = "int"
	Long   Kind = "long"
	Float  Kind = "float"
	Double Kind = "double"
	Char   Kind = "char"
	String Kind = "string"
)

// Kinds lists the recognized element kinds in the order the harness runs them.
var Kinds = []Kind{Int, Long, Float, Double, Char, String}

func (k Kind) valid() bool {
	switch k {
	case Int, Long, Float, Double, Char, String:
		return true
	}
	return false
}

// Spec describes one generated array. The zero value is not usable; build it with NewSpec.
type Spec struct {
	size      int
	structure Structure
	kind      Kind
}

// NewSpec validates the three parameters and returns an immutable Spec.
func NewSpec(size int, structure Structure, kind Kind) (Spec, error) {
	if size <= 0 {
		return Spec{}, errors.Mark(errors.Wrapf(ErrInvalidSize, "size %d", size), ErrInvalidArgument)
	}
	if !structure.valid() {
		return Spec{}, errors.Mark(errors.Wrapf(ErrUnknownStructure, "%q", string(structure)), ErrInvalidArgument)
	}
	if !kind.valid() {
		return Spec{}, errors.Mark(errors.Wrapf(ErrUnknownKind, "%q", string(kind)), ErrInvalidArgument)
	}
	return Spec{size: size, structure: structure, kind: kind}, nil
}

// ParseSpec is NewSpec for plain string names.
func ParseSpec(size int, structure, kind string) (Spec, error) {
	return NewSpec(size, Structure(structure), Kind(kind))
}

// Size is the array length.
func (s Spec) Size() int { return s.size }

// Structure is the layout of the generated array.
func (s Spec) Structure() Structure { return s.structure }

// Kind is the element kind of the generated array.
func (s Spec) Kind() Kind { return s.kind }
