package testutil

import (
	"fmt"
	"time"

	"github.com/tessark/cohort/model"
	"github.com/tessark/cohort/util"
)

var (
	firstNames = []string{
		"Ada", "Alan", "Grace", "Edsger", "Barbara", "Donald", "Margaret",
		"John", "Katherine", "Dennis", "Radia", "Ken", "Frances", "Tim",
	}
	lastNames = []string{
		"Lovelace", "Turing", "Hopper", "Dijkstra", "Liskov", "Knuth",
		"Hamilton", "Backus", "Johnson", "Ritchie", "Perlman", "Thompson",
	}
	departments = []string{
		"Computer Science", "Mathematics", "Physics", "Biology", "History",
	}
	courses = []string{
		"Algorithms", "Linear Algebra", "Quantum Mechanics", "Genetics",
		"Medieval Europe", "Statistics", "Compilers", "Thermodynamics",
	}
)

// GenerateStudents produces a deterministic synthetic corpus of n student
// records from the given RNG. The same seed always yields the same corpus.
func GenerateStudents(rng *util.RNG, n int) []*model.Record {
	records := make([]*model.Record, n)
	base := time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)

	for i := range records {
		year := 1 + rng.Intn(4)
		r := &model.Record{
			ID:         model.StudentID(i + 1),
			Name:       fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))]),
			Department: departments[rng.Intn(len(departments))],
			Course:     courses[rng.Intn(len(courses))],
			Year:       year,
			GPA:        rng.Range(2.0, 4.0),
			Credits:    year*30 + rng.Intn(30),
			EnrolledAt: base.AddDate(-(year - 1), 0, rng.Intn(28)),
		}

		days := 20 + rng.Intn(40)
		r.Attendance = make([]model.AttendanceEntry, days)
		for d := range r.Attendance {
			r.Attendance[d] = model.AttendanceEntry{
				Date:    base.AddDate(0, 0, d),
				Present: rng.Float64() < 0.85,
			}
		}

		grades := 3 + rng.Intn(5)
		r.Grades = make([]model.GradeEntry, grades)
		for g := range r.Grades {
			r.Grades[g] = model.GradeEntry{
				Course:     courses[rng.Intn(len(courses))],
				Score:      rng.Range(40, 100),
				Credits:    3 + rng.Intn(3),
				RecordedAt: base.AddDate(0, g, 0),
			}
		}

		records[i] = r
	}
	return records
}
