package order

import (
	"cmp"
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tessark/cohort/model"
)

// Direction selects ascending or descending order for a sort key.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// Field enumerates the record fields a sort key can address.
type Field int

const (
	FieldName Field = iota
	FieldDepartment
	FieldCourse
	FieldYear
	FieldGPA
	FieldCredits
	FieldEnrolledAt
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldDepartment:
		return "department"
	case FieldCourse:
		return "course"
	case FieldYear:
		return "year"
	case FieldGPA:
		return "gpa"
	case FieldCredits:
		return "credits"
	case FieldEnrolledAt:
		return "enrolled_at"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// ErrUnknownField indicates a sort key addressing a Field outside the
// enumeration.
type ErrUnknownField struct {
	Field Field
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("order: unknown sort field %d", int(e.Field))
}

// Key is one field of a lexicographic sort key sequence.
type Key struct {
	Field     Field
	Direction Direction
}

// CompositeOptions contains configuration options for the composite sort.
type CompositeOptions struct {
	// Collator compares string fields. Nil means a collator for language.Und,
	// which gives Unicode default collation order.
	Collator *collate.Collator
}

// Composite sorts records in place by the given key sequence: the first key
// yielding a non-zero comparison decides the relative order of two records,
// reversed for descending keys. String fields compare through the collator
// (locale-aware), dates by instant, numbers by value. The ordering pass is
// the hybrid quicksort.
//
// An empty key sequence leaves the input untouched.
func Composite(records []*model.Record, keys []Key, opts *CompositeOptions) error {
	if len(keys) == 0 {
		return nil
	}
	for _, k := range keys {
		if k.Field < FieldName || k.Field > FieldEnrolledAt {
			return &ErrUnknownField{Field: k.Field}
		}
	}

	var coll *collate.Collator
	if opts != nil && opts.Collator != nil {
		coll = opts.Collator
	} else {
		coll = collate.New(language.Und)
	}

	Quick(records, func(a, b *model.Record) int {
		for _, k := range keys {
			c := compareField(coll, a, b, k.Field)
			if c == 0 {
				continue
			}
			if k.Direction == Descending {
				c = -c
			}
			return c
		}
		return 0
	})
	return nil
}

func compareField(coll *collate.Collator, a, b *model.Record, f Field) int {
	switch f {
	case FieldName:
		return coll.CompareString(a.Name, b.Name)
	case FieldDepartment:
		return coll.CompareString(a.Department, b.Department)
	case FieldCourse:
		return coll.CompareString(a.Course, b.Course)
	case FieldYear:
		return cmp.Compare(a.Year, b.Year)
	case FieldGPA:
		return cmp.Compare(a.GPA, b.GPA)
	case FieldCredits:
		return cmp.Compare(a.Credits, b.Credits)
	case FieldEnrolledAt:
		return a.EnrolledAt.Compare(b.EnrolledAt)
	default:
		return 0
	}
}
