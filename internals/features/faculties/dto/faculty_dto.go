package dto

import "nodues_backend/internals/features/faculties/model"

type RegisterFacultyRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
	EmployeeID string `json:"employeeId"`
}

func (r RegisterFacultyRequest) ToModel() *model.FacultyModel {
	return &model.FacultyModel{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Password:   r.Password,
		Department: r.Department,
		EmployeeID: r.EmployeeID,
	}
}

type LoginFacultyRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

// UpdateFacultyRequest is the profile-completion form. A non-empty
// password re-hashes the credential.
type UpdateFacultyRequest struct {
	FirstName      *string  `json:"firstName,omitempty"`
	LastName       *string  `json:"lastName,omitempty"`
	Password       *string  `json:"password,omitempty"`
	Department     *string  `json:"department,omitempty"`
	Experience     *float64 `json:"experience,omitempty"`
	Specialization *string  `json:"specialization,omitempty"`
	ContactNumber  *string  `json:"contactNumber,omitempty"`
	Address        *string  `json:"address,omitempty"`
}

func (r UpdateFacultyRequest) ApplyTo(f *model.FacultyModel) {
	if r.FirstName != nil {
		f.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		f.LastName = *r.LastName
	}
	if r.Department != nil {
		f.Department = *r.Department
	}
	if r.Experience != nil {
		f.Experience = r.Experience
	}
	if r.Specialization != nil {
		f.Specialization = r.Specialization
	}
	if r.ContactNumber != nil {
		f.ContactNumber = r.ContactNumber
	}
	if r.Address != nil {
		f.Address = r.Address
	}
}

type AddTeachingDetailRequest struct {
	Semester int    `json:"semester"`
	Section  string `json:"section"`
	Subject  string `json:"subject"`
}
