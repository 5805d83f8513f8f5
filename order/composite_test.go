package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tessark/cohort/model"
)

func compositeCorpus() []*model.Record {
	return []*model.Record{
		{Name: "Zoe", Department: "Physics", Year: 2, GPA: 3.1, EnrolledAt: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Adam", Department: "Physics", Year: 1, GPA: 3.9, EnrolledAt: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Mia", Department: "Art", Year: 2, GPA: 3.5, EnrolledAt: time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Liam", Department: "Art", Year: 2, GPA: 3.5, EnrolledAt: time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestCompositeSingleKey(t *testing.T) {
	records := compositeCorpus()
	require.NoError(t, Composite(records, []Key{{Field: FieldName}}, nil))

	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"Adam", "Liam", "Mia", "Zoe"}, names)
}

func TestCompositeMultiKey(t *testing.T) {
	records := compositeCorpus()
	keys := []Key{
		{Field: FieldDepartment, Direction: Ascending},
		{Field: FieldGPA, Direction: Descending},
		{Field: FieldEnrolledAt, Direction: Ascending},
	}
	require.NoError(t, Composite(records, keys, nil))

	// Art before Physics; within Art equal GPA resolves by enrollment date.
	assert.Equal(t, "Liam", records[0].Name)
	assert.Equal(t, "Mia", records[1].Name)
	assert.Equal(t, "Adam", records[2].Name)
	assert.Equal(t, "Zoe", records[3].Name)
}

func TestCompositeDescendingNumeric(t *testing.T) {
	records := compositeCorpus()
	require.NoError(t, Composite(records, []Key{{Field: FieldGPA, Direction: Descending}}, nil))

	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(t, records[i-1].GPA, records[i].GPA)
	}
}

func TestCompositeLocaleAwareStrings(t *testing.T) {
	records := []*model.Record{
		{Name: "Zebra"},
		{Name: "Äpfel"},
		{Name: "apple"},
	}
	opts := &CompositeOptions{Collator: collate.New(language.German)}
	require.NoError(t, Composite(records, []Key{{Field: FieldName}}, opts))

	// German collation puts Ä with A, not after Z as raw bytes would, and
	// "Äpfel" sorts before "apple" on the third letter (f < p).
	assert.Equal(t, "Äpfel", records[0].Name)
	assert.Equal(t, "apple", records[1].Name)
	assert.Equal(t, "Zebra", records[2].Name)
}

func TestCompositeNoKeysNoop(t *testing.T) {
	records := compositeCorpus()
	first := records[0]
	require.NoError(t, Composite(records, nil, nil))
	assert.Same(t, first, records[0])
}

func TestCompositeUnknownField(t *testing.T) {
	err := Composite(compositeCorpus(), []Key{{Field: Field(42)}}, nil)
	var unknown *ErrUnknownField
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, Field(42), unknown.Field)
}
