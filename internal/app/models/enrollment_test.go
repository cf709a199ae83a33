package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveGrade(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  Grade
	}{
		{"perfect score", 100, GradeAPlus},
		{"lower bound of A+", 90, GradeAPlus},
		{"just below A+", 89.99, GradeA},
		{"lower bound of A", 80, GradeA},
		{"lower bound of B+", 70, GradeBPlus},
		{"lower bound of B", 60, GradeB},
		{"lower bound of C", 50, GradeC},
		{"lower bound of D", 40, GradeD},
		{"just below D", 39.5, GradeF},
		{"zero", 0, GradeF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveGrade(tt.total))
		})
	}
}

func TestEnrollmentTotalMarks(t *testing.T) {
	internal := 42.0
	external := 38.5

	t.Run("both components recorded", func(t *testing.T) {
		e := &Enrollment{InternalMarks: &internal, ExternalMarks: &external}
		total, graded := e.TotalMarks()
		assert.True(t, graded)
		assert.Equal(t, 80.5, total)
	})

	t.Run("missing external marks", func(t *testing.T) {
		e := &Enrollment{InternalMarks: &internal}
		_, graded := e.TotalMarks()
		assert.False(t, graded)
	})

	t.Run("missing both", func(t *testing.T) {
		e := &Enrollment{}
		_, graded := e.TotalMarks()
		assert.False(t, graded)
	})
}
