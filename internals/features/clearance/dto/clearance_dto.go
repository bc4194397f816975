package dto

import (
	service "nodues_backend/internals/features/clearance/service"
	studentModel "nodues_backend/internals/features/students/model"
)

// UpdateStatusRequest mutates one subject's triple. Empty artifact fields
// are left untouched.
type UpdateStatusRequest struct {
	StudentID    string `json:"studentId"`
	Subject      string `json:"subject"`
	Assignment   string `json:"assignment,omitempty"`
	LabManual    string `json:"labManual,omitempty"`
	Presentation string `json:"presentation,omitempty"`
}

func (r UpdateStatusRequest) Patch() service.StatusPatch {
	return service.StatusPatch{
		Assignment:   r.Assignment,
		LabManual:    r.LabManual,
		Presentation: r.Presentation,
	}
}

type UpdateHodApprovalRequest struct {
	StudentID string `json:"studentId"`
	Status    string `json:"status"`
}

// ClearanceView is the derived state of one student as the HOD screen
// shows it.
type ClearanceView struct {
	Student         *studentModel.StudentModel `json:"student"`
	Summary         service.Summary            `json:"summary"`
	DisplayedStatus string                     `json:"displayedStatus"`
}

// FacultyStudentView is one row of the faculty approval screen: a
// matched student and the subjects this faculty may judge for them.
type FacultyStudentView struct {
	Student  *studentModel.StudentModel `json:"student"`
	Subjects []string                   `json:"subjects"`
}
