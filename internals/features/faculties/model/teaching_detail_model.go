package model

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeachingDetailModel is one (semester, section, subject) assignment of a
// faculty member. Each entry has its own identity so it can be removed
// independently of its siblings.
type TeachingDetailModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FacultyID uuid.UUID `gorm:"type:uuid;not null;index" json:"facultyId"`
	Semester  int       `gorm:"not null" json:"semester" validate:"required,min=1,max=8"`
	Section   string    `gorm:"size:1;not null" json:"section" validate:"required,oneof=A B C D E"`
	Subject   string    `gorm:"size:150;not null" json:"subject" validate:"required"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (TeachingDetailModel) TableName() string {
	return "faculty_teaching_details"
}

func (t *TeachingDetailModel) Normalize() {
	t.Section = strings.ToUpper(strings.TrimSpace(t.Section))
	t.Subject = strings.TrimSpace(t.Subject)
}

func (t *TeachingDetailModel) Validate() error {
	t.Normalize()
	if err := validate.Struct(t); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var msg strings.Builder
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			msg.WriteString(fieldErr.Field() + ": " + fieldErr.Field() + " is required.\n")
		case "email":
			msg.WriteString(fieldErr.Field() + ": Invalid email format.\n")
		case "min", "gte":
			msg.WriteString(fieldErr.Field() + ": " + fieldErr.Field() + " must be at least " + fieldErr.Param() + ".\n")
		case "max":
			msg.WriteString(fieldErr.Field() + ": " + fieldErr.Field() + " must be at most " + fieldErr.Param() + ".\n")
		case "oneof":
			msg.WriteString(fieldErr.Field() + ": " + fieldErr.Field() + " must be one of " + fieldErr.Param() + ".\n")
		default:
			msg.WriteString(fieldErr.Field() + ": Invalid format.\n")
		}
	}
	return errors.New(msg.String())
}
