package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nodues_backend/internals/constants"
	"nodues_backend/internals/features/students/dto"
	"nodues_backend/internals/features/students/model"
	helper "nodues_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// POST /Student/register
func (sc *StudentController) Register(c *fiber.Ctx) error {
	var input dto.RegisterStudentRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}

	student, err := input.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := student.Validate(); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation error", err.Error())
	}

	// specific messages for known duplicates, like the registration form expects
	var existing model.StudentModel
	err = sc.DB.Where("roll_number = ? OR email = ?", student.RollNumber, student.Email).First(&existing).Error
	if err == nil {
		if existing.RollNumber == student.RollNumber {
			return helper.Error(c, fiber.StatusBadRequest, "Student with this roll number already exists")
		}
		return helper.Error(c, fiber.StatusBadRequest, "Email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Duplicate check failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during registration")
	}

	hashed, err := helper.HashPassword(student.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	student.Password = hashed

	if err := sc.DB.Create(student).Error; err != nil {
		// the pre-check races with concurrent registrations; the unique
		// indexes are the source of truth
		if constraint, ok := helper.IsUniqueViolation(err); ok {
			if strings.Contains(constraint, "roll_number") {
				return helper.Error(c, fiber.StatusBadRequest, "Student with this roll number already exists")
			}
			return helper.Error(c, fiber.StatusBadRequest, "Email is already registered")
		}
		log.Println("[ERROR] Failed to create student:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during registration")
	}

	token, err := helper.IssueToken(student.ID, constants.RoleStudent)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "JWT secret key is missing in backend environment configuration")
	}

	log.Printf("[SUCCESS] Registered student %s (%s)\n", student.RollNumber, student.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student registered successfully", fiber.Map{
		"token": token,
		"user":  student,
	})
}

// POST /Student/login
func (sc *StudentController) Login(c *fiber.Ctx) error {
	var input dto.LoginStudentRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}

	rollNumber := strings.ToUpper(strings.TrimSpace(input.RollNumber))
	var student model.StudentModel
	if err := sc.DB.First(&student, "roll_number = ?", rollNumber).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "User not found")
	}

	if err := helper.CheckPasswordHash(student.Password, input.Password); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid password")
	}

	token, err := helper.IssueToken(student.ID, constants.RoleStudent)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login successful", fiber.Map{
		"token": token,
		"user":  student,
	})
}

// GET /Student/profile/:id
func (sc *StudentController) GetProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "Student profile fetched successfully", student)
}

// PUT /Student/update/:id
func (sc *StudentController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	var input dto.UpdateStudentRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.ApplyTo(&student)

	if err := student.Validate(); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation error", err.Error())
	}

	// field-scoped update: submissions and the HOD decision are owned by
	// their own endpoints and must survive a write landing between the
	// read above and this statement
	if err := sc.DB.Model(&student).Updates(student.ProfileColumns()).Error; err != nil {
		log.Println("[ERROR] Failed to update student:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.Success(c, "Student updated successfully", student)
}

// DELETE /Student/delete/:id: hard delete, the record owns no children
func (sc *StudentController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	tx := sc.DB.Delete(&model.StudentModel{}, "id = ?", id)
	if tx.Error != nil {
		log.Println("[ERROR] Failed to delete student:", tx.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "User deleted successfully", fiber.Map{"id": id})
}

// GET /Student/getList: bulk read feeding the dashboards
func (sc *StudentController) GetList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := sc.DB.Model(&model.StudentModel{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count students:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	var students []model.StudentModel
	if err := sc.DB.
		Order("roll_number ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&students).Error; err != nil {
		log.Println("[ERROR] Failed to fetch students:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	return helper.Success(c, "Students fetched successfully", fiber.Map{
		"students":   students,
		"pagination": helper.BuildPagination(total, paging, len(students)),
	})
}
