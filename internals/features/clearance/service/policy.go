package service

import (
	"errors"
	"strings"

	facultyModel "nodues_backend/internals/features/faculties/model"
	hodModel "nodues_backend/internals/features/hods/model"
	studentModel "nodues_backend/internals/features/students/model"
)

// Authorization guards evaluated before every clearance mutation. The
// client already filters by these rules; enforcing them here closes the
// trust boundary instead of relying on the UI.
var (
	ErrNotAssignedSubject = errors.New("faculty is not assigned this subject for the student's semester and section")
	ErrWrongDepartment    = errors.New("student does not belong to this HOD's department")
)

// CanJudgeSubmission allows a faculty write iff (student.semester,
// student.section, subject) appears in the faculty's teaching details.
func CanJudgeSubmission(faculty *facultyModel.FacultyModel, student *studentModel.StudentModel, subject string) error {
	if !TeachesSubject(faculty.TeachingDetails, student.Semester, student.Section, subject) {
		return ErrNotAssignedSubject
	}
	return nil
}

// SameDepartment compares a student branch against a HOD department:
// trimmed, case-insensitive. The department listing query must filter
// with the same rule, otherwise a student the HOD may decide on would
// be missing from their screen.
func SameDepartment(branch, department string) bool {
	return strings.EqualFold(strings.TrimSpace(branch), strings.TrimSpace(department))
}

// CanDecideClearance allows a HOD decision iff the student's branch
// equals the HOD's department.
func CanDecideClearance(hod *hodModel.HodModel, student *studentModel.StudentModel) error {
	if !SameDepartment(student.Branch, hod.Department) {
		return ErrWrongDepartment
	}
	return nil
}
