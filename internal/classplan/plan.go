// Package classplan turns a total student count and a structure group
// into a concrete set of class records: how many parallel classes each
// grade level gets, what they are called, and which organizational
// attributes they carry.
package classplan

import (
	"errors"
	"fmt"

	"github.com/conn-castle/mockfactory/internal/messages"
	"github.com/conn-castle/mockfactory/internal/structure"
)

// ErrNoGradeLevels is a sentinel for structure groups without grade
// levels; planning cannot proceed for such a school.
var ErrNoGradeLevels = errors.New("structure group has no grade levels")

// GradePlan is the planned class count for one grade level.
type GradePlan struct {
	Grade    structure.GradeLevel
	Count    int
	Capstone bool
}

// Plan is the planned class distribution for one school.
type Plan struct {
	// Regular grade levels in template order, then capstone grade levels
	// in template order. Capstone grades always plan exactly one class.
	Regular  []GradePlan
	Capstone []GradePlan

	// StudentsPerGrade is the real-valued even split across all grade
	// levels, capstone included.
	StudentsPerGrade float64
	// ClassesPerGrade is the base class count of a regular grade level
	// before remainder distribution.
	ClassesPerGrade int
	// Remainder is the number of leading regular grade levels that
	// receive one extra class.
	Remainder int
}

// Grades returns all planned grade levels, regular first, capstone after.
func (p *Plan) Grades() []GradePlan {
	grades := make([]GradePlan, 0, len(p.Regular)+len(p.Capstone))
	grades = append(grades, p.Regular...)
	grades = append(grades, p.Capstone...)
	return grades
}

// TotalClasses returns the planned class count across all grade levels.
func (p *Plan) TotalClasses() int {
	total := 0
	for _, grade := range p.Grades() {
		total += grade.Count
	}
	return total
}

// PlanClasses computes the class distribution for a school.
//
// Every grade level is assumed to hold totalStudents/numGradeLevels
// students. Regular grades are split into parallel classes of roughly
// targetClassSize students; the integer-division loss of that split is
// re-distributed as whole extra classes to the leading regular grades.
// Capstone grades (Oberstufe of GY/GE/HI) always form exactly one class
// holding the whole year group.
func PlanClasses(totalStudents, targetClassSize int, group *structure.Group, schulform string) (*Plan, error) {
	if totalStudents <= 0 {
		return nil, errors.New(messages.PlanStudentsInvalid)
	}
	if targetClassSize <= 0 {
		return nil, errors.New(messages.PlanClassSizeInvalid)
	}
	numGradeLevels := len(group.Jahrgaenge)
	if numGradeLevels == 0 {
		return nil, fmt.Errorf("%w: "+messages.PlanNoGradeLevelsFmt, ErrNoGradeLevels, group.Name)
	}

	var regular, capstone []structure.GradeLevel
	for _, grade := range group.Jahrgaenge {
		if IsCapstoneGrade(schulform, grade.Kuerzel) {
			capstone = append(capstone, grade)
		} else {
			regular = append(regular, grade)
		}
	}

	plan := &Plan{
		StudentsPerGrade: float64(totalStudents) / float64(numGradeLevels),
	}

	if len(regular) > 0 {
		perGrade := int(plan.StudentsPerGrade / float64(targetClassSize))
		if perGrade < 1 {
			perGrade = 1
		}
		// Whole-class loss of the per-grade split. The grade-level split
		// itself divides evenly by construction, so this is usually zero;
		// the arithmetic is kept as-is because downstream data depends on
		// its exact behavior.
		remainderStudents := int(float64(totalStudents) - plan.StudentsPerGrade*float64(numGradeLevels))
		remainder := 0
		if remainderStudents > 0 {
			remainder = remainderStudents / targetClassSize
		}
		plan.ClassesPerGrade = perGrade
		plan.Remainder = remainder

		if err := checkSuffixBound(perGrade + 1); err != nil {
			return nil, err
		}

		for i, grade := range regular {
			count := perGrade
			if i < remainder {
				count++
			}
			plan.Regular = append(plan.Regular, GradePlan{Grade: grade, Count: count})
		}
	}

	for _, grade := range capstone {
		plan.Capstone = append(plan.Capstone, GradePlan{Grade: grade, Count: 1, Capstone: true})
	}

	return plan, nil
}

// checkSuffixBound rejects plans whose largest per-grade class count
// cannot be named within the two-letter suffix scheme.
func checkSuffixBound(maxCount int) error {
	if maxCount > SuffixCeiling {
		return fmt.Errorf("%w: "+messages.PlanSuffixRangeFmt, ErrSuffixRange, maxCount-1, SuffixCeiling)
	}
	return nil
}
