package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	facultyModel "nodues_backend/internals/features/faculties/model"
)

func detail(sem int, sec, subject string) facultyModel.TeachingDetailModel {
	return facultyModel.TeachingDetailModel{Semester: sem, Section: sec, Subject: subject}
}

func TestSubjectsFor(t *testing.T) {
	details := []facultyModel.TeachingDetailModel{
		detail(3, "A", "DBMS"),
		detail(3, "A", "Operating Systems"),
		detail(3, "B", "DBMS"),
		detail(5, "A", "Compilers"),
		detail(3, "A", "DBMS"), // duplicate entry
		detail(3, "A", "  "),   // blank subject is skipped
	}

	assert.Equal(t, []string{"DBMS", "Operating Systems"}, SubjectsFor(details, 3, "A"))
	assert.Equal(t, []string{"DBMS"}, SubjectsFor(details, 3, "B"))
	assert.Empty(t, SubjectsFor(details, 4, "A"), "no match on semester alone")
	assert.Empty(t, SubjectsFor(details, 3, "C"), "no match on section alone")
}

func TestSubjectsForSectionNormalization(t *testing.T) {
	details := []facultyModel.TeachingDetailModel{detail(3, " a ", "DBMS")}

	assert.Equal(t, []string{"DBMS"}, SubjectsFor(details, 3, "A"))
	assert.Equal(t, []string{"DBMS"}, SubjectsFor(details, 3, "a"))
}

func TestTeachesSubject(t *testing.T) {
	details := []facultyModel.TeachingDetailModel{
		detail(3, "A", "DBMS"),
		detail(5, "B", "Compilers"),
	}

	assert.True(t, TeachesSubject(details, 3, "A", "DBMS"))
	assert.True(t, TeachesSubject(details, 3, "a", " DBMS "))
	assert.False(t, TeachesSubject(details, 3, "A", "Compilers"), "subject taught to a different class")
	assert.False(t, TeachesSubject(details, 3, "B", "DBMS"))
	assert.False(t, TeachesSubject(details, 4, "A", "DBMS"))
	assert.False(t, TeachesSubject(nil, 3, "A", "DBMS"))
}

func TestEligiblePairs(t *testing.T) {
	details := []facultyModel.TeachingDetailModel{
		detail(3, "A", "DBMS"),
		detail(3, "a", "Operating Systems"), // same class, different casing
		detail(5, "B", "Compilers"),
		detail(3, "A", "Networks"),
	}

	assert.Equal(t, []ClassKey{
		{Semester: 3, Section: "A"},
		{Semester: 5, Section: "B"},
	}, EligiblePairs(details))

	assert.Empty(t, EligiblePairs(nil))
}
