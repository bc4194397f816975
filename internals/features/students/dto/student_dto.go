package dto

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"nodues_backend/internals/features/students/model"
)

// RegisterStudentRequest mirrors the registration form field names.
type RegisterStudentRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	RollNumber  string `json:"rollNumber"`
	Branch      string `json:"branch"`
	Year        string `json:"year"`
	Section     string `json:"section"`
	Semester    int    `json:"semester"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
}

// ToModel builds an unsaved StudentModel (password still plain here; the
// controller hashes it before create).
func (r RegisterStudentRequest) ToModel() (*model.StudentModel, error) {
	dob, err := time.Parse("2006-01-02", r.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("dateOfBirth must be YYYY-MM-DD")
	}
	return &model.StudentModel{
		Firstname:   r.FirstName,
		Lastname:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		RollNumber:  r.RollNumber,
		Branch:      r.Branch,
		Year:        r.Year,
		Section:     r.Section,
		Semester:    r.Semester,
		PhoneNumber: r.PhoneNumber,
		DOB:         datatypes.Date(dob),
		Submissions: model.SubmissionMap{},
	}, nil
}

type LoginStudentRequest struct {
	RollNumber string `json:"rollNumber"`
	Password   string `json:"password"`
}

// UpdateStudentRequest updates profile fields only; credentials and the
// submissions ledger have their own endpoints.
type UpdateStudentRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Branch      *string `json:"branch,omitempty"`
	Year        *string `json:"year,omitempty"`
	Section     *string `json:"section,omitempty"`
	Semester    *int    `json:"semester,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

func (r UpdateStudentRequest) ApplyTo(s *model.StudentModel) {
	if r.FirstName != nil {
		s.Firstname = *r.FirstName
	}
	if r.LastName != nil {
		s.Lastname = *r.LastName
	}
	if r.Branch != nil {
		s.Branch = *r.Branch
	}
	if r.Year != nil {
		s.Year = *r.Year
	}
	if r.Section != nil {
		s.Section = *r.Section
	}
	if r.Semester != nil {
		s.Semester = *r.Semester
	}
	if r.PhoneNumber != nil {
		s.PhoneNumber = *r.PhoneNumber
	}
}
