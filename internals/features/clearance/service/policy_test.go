package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	facultyModel "nodues_backend/internals/features/faculties/model"
	hodModel "nodues_backend/internals/features/hods/model"
	studentModel "nodues_backend/internals/features/students/model"
)

func TestCanJudgeSubmission(t *testing.T) {
	faculty := &facultyModel.FacultyModel{
		TeachingDetails: []facultyModel.TeachingDetailModel{
			detail(3, "A", "DBMS"),
			detail(5, "B", "Compilers"),
		},
	}
	student := &studentModel.StudentModel{Semester: 3, Section: "A"}

	assert.NoError(t, CanJudgeSubmission(faculty, student, "DBMS"))

	// Teaching the subject to another class grants nothing for this student.
	assert.ErrorIs(t, CanJudgeSubmission(faculty, student, "Compilers"), ErrNotAssignedSubject)
	assert.ErrorIs(t, CanJudgeSubmission(faculty, student, "Networks"), ErrNotAssignedSubject)

	other := &studentModel.StudentModel{Semester: 3, Section: "B"}
	assert.ErrorIs(t, CanJudgeSubmission(faculty, other, "DBMS"), ErrNotAssignedSubject)

	bare := &facultyModel.FacultyModel{}
	assert.ErrorIs(t, CanJudgeSubmission(bare, student, "DBMS"), ErrNotAssignedSubject)
}

func TestSameDepartment(t *testing.T) {
	assert.True(t, SameDepartment("Computer Science", "Computer Science"))
	assert.True(t, SameDepartment(" computer science ", "Computer Science"))
	assert.True(t, SameDepartment("COMPUTER SCIENCE", "computer science "))

	assert.False(t, SameDepartment("Mechanical", "Computer Science"))
	assert.False(t, SameDepartment("", "Computer Science"))
}

func TestCanDecideClearance(t *testing.T) {
	hod := &hodModel.HodModel{Department: "Computer Science"}

	assert.NoError(t, CanDecideClearance(hod, &studentModel.StudentModel{Branch: "Computer Science"}))
	assert.NoError(t, CanDecideClearance(hod, &studentModel.StudentModel{Branch: " computer science "}),
		"department match ignores case and padding")

	assert.ErrorIs(t,
		CanDecideClearance(hod, &studentModel.StudentModel{Branch: "Mechanical"}),
		ErrWrongDepartment)
	assert.ErrorIs(t,
		CanDecideClearance(hod, &studentModel.StudentModel{}),
		ErrWrongDepartment)
}
