package model

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// FacultyModel represents the faculties table
type FacultyModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName      string    `gorm:"size:100;not null" json:"firstName" validate:"required"`
	LastName       string    `gorm:"size:100;not null" json:"lastName" validate:"required"`
	Email          string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password       string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Department     string    `gorm:"size:100;not null" json:"department" validate:"required"`
	EmployeeID     string    `gorm:"size:50;unique;not null" json:"employeeId" validate:"required"`
	Experience     *float64  `json:"experience,omitempty" validate:"omitempty,gte=0"`
	Specialization *string   `gorm:"size:150" json:"specialization,omitempty"`
	ContactNumber  *string   `gorm:"size:20" json:"contactNumber,omitempty"`
	Address        *string   `json:"address,omitempty"`
	Photo          *string   `json:"photo,omitempty"`
	PhotoPublicID  *string   `gorm:"size:255" json:"-"`

	TeachingDetails []TeachingDetailModel `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE" json:"teachingDetails"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (FacultyModel) TableName() string {
	return "faculties"
}

func (f *FacultyModel) Normalize() {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.EmployeeID = strings.TrimSpace(f.EmployeeID)
}

func (f *FacultyModel) Validate() error {
	f.Normalize()
	if err := validate.Struct(f); err != nil {
		return formatValidationError(err)
	}
	return nil
}
