package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessark/cohort/util"
)

func TestGenerateStudentsDeterministic(t *testing.T) {
	a := GenerateStudents(util.NewRNG(42), 20)
	b := GenerateStudents(util.NewRNG(42), 20)

	require.Len(t, a, 20)
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].GPA, b[i].GPA)
		assert.Equal(t, a[i].EnrolledAt, b[i].EnrolledAt)
	}
}

func TestGenerateStudentsShape(t *testing.T) {
	records := GenerateStudents(util.NewRNG(1), 50)

	for _, r := range records {
		require.NotEmpty(t, r.Name)
		require.NotEmpty(t, r.Department)
		assert.GreaterOrEqual(t, r.Year, 1)
		assert.LessOrEqual(t, r.Year, 4)
		assert.GreaterOrEqual(t, r.GPA, 2.0)
		assert.Less(t, r.GPA, 4.0)
		assert.NotEmpty(t, r.Attendance)
		assert.NotEmpty(t, r.Grades)
	}
}
