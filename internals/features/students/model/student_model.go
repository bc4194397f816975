package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"nodues_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// SubmissionTriple is one subject's artifact statuses. Every field holds
// one of "Not Submitted" | "Pending" | "Approved" | "Rejected".
type SubmissionTriple struct {
	Assignment   string `json:"assignment"`
	LabManual    string `json:"labManual"`
	Presentation string `json:"presentation"`
}

// NewSubmissionTriple returns a triple with all fields "Not Submitted".
func NewSubmissionTriple() SubmissionTriple {
	return SubmissionTriple{
		Assignment:   constants.ArtifactNotSubmitted,
		LabManual:    constants.ArtifactNotSubmitted,
		Presentation: constants.ArtifactNotSubmitted,
	}
}

// SubmissionMap is the per-student submissions ledger: subject name →
// artifact triple. Subject names are arbitrary runtime strings, so this
// is a JSONB column, not a fixed schema.
type SubmissionMap map[string]SubmissionTriple

func (m SubmissionMap) Value() (driver.Value, error) {
	if m == nil {
		m = SubmissionMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *SubmissionMap) Scan(src interface{}) error {
	if src == nil {
		*m = SubmissionMap{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("submissions: unsupported scan type %T", src)
	}
	if len(data) == 0 {
		*m = SubmissionMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

func (SubmissionMap) GormDataType() string { return "jsonb" }

// StudentModel represents the students table
type StudentModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Firstname   string         `gorm:"size:100;not null" json:"firstname" validate:"required"`
	Lastname    string         `gorm:"size:100;not null" json:"lastname" validate:"required"`
	Email       string         `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password    string         `gorm:"not null" json:"-" validate:"required,min=8"`
	RollNumber  string         `gorm:"size:50;unique;not null" json:"rollNumber" validate:"required"`
	Branch      string         `gorm:"size:100;not null" json:"branch" validate:"required"`
	Year        string         `gorm:"size:20;not null" json:"year" validate:"required"`
	Section     string         `gorm:"size:1;not null" json:"section" validate:"required,oneof=A B C D E"`
	Semester    int            `gorm:"not null" json:"semester" validate:"required,min=1,max=8"`
	PhoneNumber string         `gorm:"size:10;not null" json:"phonenumber" validate:"required,len=10,numeric"`
	DOB         datatypes.Date `gorm:"not null" json:"dob"`

	Submissions          SubmissionMap `gorm:"type:jsonb;not null;default:'{}'" json:"submissions"`
	HodApprovalStatus    string        `gorm:"size:20;not null;default:'Pending'" json:"hodApprovalStatus" validate:"omitempty,oneof=Pending Approved Rejected"`
	HodApprovalUpdatedAt *time.Time    `json:"hodApprovalUpdatedAt"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (StudentModel) TableName() string {
	return "students"
}

// Normalize enforces stored casing: roll number upper, email lower.
func (s *StudentModel) Normalize() {
	s.RollNumber = strings.ToUpper(strings.TrimSpace(s.RollNumber))
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Section = strings.ToUpper(strings.TrimSpace(s.Section))
	if s.HodApprovalStatus == "" {
		s.HodApprovalStatus = constants.HodPending
	}
	if s.Submissions == nil {
		s.Submissions = SubmissionMap{}
	}
}

// ProfileColumns lists the assignments a profile update writes. The
// submissions ledger and the HOD decision columns have their own update
// paths and are excluded here: writing them back from a stale read
// would revert concurrent faculty or HOD writes.
func (s *StudentModel) ProfileColumns() map[string]interface{} {
	return map[string]interface{}{
		"firstname":    s.Firstname,
		"lastname":     s.Lastname,
		"branch":       s.Branch,
		"year":         s.Year,
		"section":      s.Section,
		"semester":     s.Semester,
		"phone_number": s.PhoneNumber,
	}
}

// Validate checks the record against the field rules above.
func (s *StudentModel) Validate() error {
	s.Normalize()

	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	errorMessages := make(map[string]string)
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " is required."
		case "email":
			errorMessages[fieldErr.Field()] = "Invalid email format."
		case "min":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be at least " + fieldErr.Param() + "."
		case "max":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be at most " + fieldErr.Param() + "."
		case "len":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be exactly " + fieldErr.Param() + " characters."
		case "numeric":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " must contain digits only."
		case "oneof":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be one of " + fieldErr.Param() + "."
		default:
			errorMessages[fieldErr.Field()] = "Invalid format."
		}
	}
	return errors.New(formatErrorMessage(errorMessages))
}

func formatErrorMessage(errs map[string]string) string {
	var msg strings.Builder
	for field, errorMsg := range errs {
		msg.WriteString(field + ": " + errorMsg + "\n")
	}
	return msg.String()
}
