package model

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// HodModel represents the hods table. One HOD per department; their
// authority covers every student whose branch equals that department.
type HodModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName    string    `gorm:"size:150;not null" json:"fullName" validate:"required"`
	Email       string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Department  string    `gorm:"size:100;not null" json:"department" validate:"required"`
	EmployeeID  string    `gorm:"size:50;unique;not null" json:"employeeId" validate:"required"`
	Password    string    `gorm:"not null" json:"-" validate:"required,min=8"`
	PhoneNumber string    `gorm:"size:20;not null" json:"phonenumber" validate:"required"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (HodModel) TableName() string {
	return "hods"
}

func (h *HodModel) Normalize() {
	h.Email = strings.ToLower(strings.TrimSpace(h.Email))
	h.EmployeeID = strings.TrimSpace(h.EmployeeID)
}

func (h *HodModel) Validate() error {
	h.Normalize()
	if err := validate.Struct(h); err != nil {
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
			msg.WriteString(fieldErr.Field() + " is required.\n")
		case "email":
			msg.WriteString("Invalid email format.\n")
		case "min":
			msg.WriteString(fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters long.\n")
		default:
			msg.WriteString(fieldErr.Field() + ": invalid format.\n")
		}
	}
	return errors.New(msg.String())
}
