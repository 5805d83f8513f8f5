package model

import (
	"strings"
	"time"
)

// StudentID is the user-facing stable identifier of a record.
type StudentID uint64

// GradeEntry is a single graded assessment belonging to a record.
type GradeEntry struct {
	Course     string
	Score      float64
	Credits    int
	RecordedAt time.Time
}

// AttendanceEntry is a single attendance observation belonging to a record.
type AttendanceEntry struct {
	Date    time.Time
	Present bool
}

// Record represents a full student record.
//
// Records are treated as immutable inputs: no engine in this module mutates a
// Record, and all derived results are returned by value so they can outlive
// the input collection.
type Record struct {
	ID         StudentID
	Name       string
	Department string
	Course     string
	Year       int
	GPA        float64
	Credits    int
	EnrolledAt time.Time

	Attendance []AttendanceEntry
	Grades     []GradeEntry
}

// SearchText returns the concatenation of the record's searchable text fields.
// Tokenization and case folding are left to the search routines.
func (r *Record) SearchText() string {
	return strings.Join([]string{r.Name, r.Department, r.Course}, " ")
}

// AttendanceRate returns the fraction of attendance entries marked present,
// or 0 if no attendance has been recorded.
func (r *Record) AttendanceRate() float64 {
	if len(r.Attendance) == 0 {
		return 0
	}
	present := 0
	for _, a := range r.Attendance {
		if a.Present {
			present++
		}
	}
	return float64(present) / float64(len(r.Attendance))
}

// GradeMean returns the mean score across the record's grade entries,
// or 0 if no grades have been recorded.
func (r *Record) GradeMean() float64 {
	if len(r.Grades) == 0 {
		return 0
	}
	sum := 0.0
	for _, g := range r.Grades {
		sum += g.Score
	}
	return sum / float64(len(r.Grades))
}
