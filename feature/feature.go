package feature

import (
	"errors"
	"fmt"

	"github.com/tessark/cohort/model"
)

// Kind enumerates the closed set of numeric features derivable from a Record.
//
// Feature access goes through this enumeration instead of string field keys so
// that a typo is a compile error, not a silent NaN.
type Kind int

const (
	GPA Kind = iota
	Credits
	Year
	AttendanceRate
	GradeMean
)

func (k Kind) String() string {
	switch k {
	case GPA:
		return "gpa"
	case Credits:
		return "credits"
	case Year:
		return "year"
	case AttendanceRate:
		return "attendance_rate"
	case GradeMean:
		return "grade_mean"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Value extracts the feature from r.
func (k Kind) Value(r *model.Record) (float64, error) {
	switch k {
	case GPA:
		return r.GPA, nil
	case Credits:
		return float64(r.Credits), nil
	case Year:
		return float64(r.Year), nil
	case AttendanceRate:
		return r.AttendanceRate(), nil
	case GradeMean:
		return r.GradeMean(), nil
	default:
		return 0, &ErrUnknownKind{Kind: k}
	}
}

// ErrEmptySchema is returned when a schema is constructed without kinds.
var ErrEmptySchema = errors.New("feature: schema requires at least one kind")

// ErrUnknownKind indicates a Kind outside the closed enumeration.
type ErrUnknownKind struct {
	Kind Kind
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("feature: unknown kind %d", int(e.Kind))
}

// Schema is a fixed, ordered set of feature extractors.
//
// Every vector produced by the same schema has identical length and dimension
// order, which is the invariant the clustering and prediction engines rely on.
type Schema struct {
	kinds []Kind
}

// NewSchema creates a schema from the given kinds, in order.
func NewSchema(kinds ...Kind) (*Schema, error) {
	if len(kinds) == 0 {
		return nil, ErrEmptySchema
	}
	for _, k := range kinds {
		if k < GPA || k > GradeMean {
			return nil, &ErrUnknownKind{Kind: k}
		}
	}
	return &Schema{kinds: append([]Kind(nil), kinds...)}, nil
}

// Dimension returns the length of vectors produced by the schema.
func (s *Schema) Dimension() int {
	return len(s.kinds)
}

// Kinds returns a copy of the schema's ordered kinds.
func (s *Schema) Kinds() []Kind {
	return append([]Kind(nil), s.kinds...)
}

// Names returns the feature names in dimension order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.kinds))
	for i, k := range s.kinds {
		names[i] = k.String()
	}
	return names
}

// Vector extracts the schema's features from r in dimension order.
func (s *Schema) Vector(r *model.Record) []float64 {
	v := make([]float64, len(s.kinds))
	for i, k := range s.kinds {
		// Kinds were validated at construction, extraction cannot fail.
		v[i], _ = k.Value(r)
	}
	return v
}

// Vectorize extracts one vector per record, preserving record order.
func (s *Schema) Vectorize(records []*model.Record) [][]float64 {
	vectors := make([][]float64, len(records))
	for i, r := range records {
		vectors[i] = s.Vector(r)
	}
	return vectors
}

// Column extracts a single feature across all records, preserving order.
func Column(records []*model.Record, k Kind) ([]float64, error) {
	if k < GPA || k > GradeMean {
		return nil, &ErrUnknownKind{Kind: k}
	}
	col := make([]float64, len(records))
	for i, r := range records {
		col[i], _ = k.Value(r)
	}
	return col, nil
}
