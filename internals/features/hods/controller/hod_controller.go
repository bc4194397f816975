package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nodues_backend/internals/constants"
	"nodues_backend/internals/features/hods/dto"
	"nodues_backend/internals/features/hods/model"
	helper "nodues_backend/internals/helpers"
)

type HodController struct {
	DB *gorm.DB
}

func NewHodController(db *gorm.DB) *HodController {
	return &HodController{DB: db}
}

// POST /Hod/register
func (hc *HodController) Register(c *fiber.Ctx) error {
	var input dto.RegisterHodRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}

	hod := input.ToModel()
	if err := hod.Validate(); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation error", err.Error())
	}

	var existing model.HodModel
	err := hc.DB.Where("email = ? OR employee_id = ?", hod.Email, hod.EmployeeID).First(&existing).Error
	if err == nil {
		if existing.EmployeeID == hod.EmployeeID {
			return helper.Error(c, fiber.StatusBadRequest, "Employee ID already registered")
		}
		return helper.Error(c, fiber.StatusBadRequest, "User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Duplicate check failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	hashed, err := helper.HashPassword(hod.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	hod.Password = hashed

	if err := hc.DB.Create(hod).Error; err != nil {
		if constraint, ok := helper.IsUniqueViolation(err); ok {
			if strings.Contains(constraint, "employee_id") {
				return helper.Error(c, fiber.StatusBadRequest, "Employee ID already registered")
			}
			return helper.Error(c, fiber.StatusBadRequest, "User already exists")
		}
		log.Println("[ERROR] Failed to create HOD:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	token, err := helper.IssueToken(hod.ID, constants.RoleHod)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	log.Printf("[SUCCESS] Registered HOD %s (%s)\n", hod.EmployeeID, hod.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "HOD registered successfully", fiber.Map{
		"token": token,
		"user":  hod,
	})
}

// POST /Hod/login: 404 on unknown employeeId, 401 on wrong password
func (hc *HodController) Login(c *fiber.Ctx) error {
	var input dto.LoginHodRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}

	var hod model.HodModel
	if err := hc.DB.First(&hod, "employee_id = ?", strings.TrimSpace(input.EmployeeID)).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Employee ID not found")
	}

	if err := helper.CheckPasswordHash(hod.Password, input.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid password")
	}

	token, err := helper.IssueToken(hod.ID, constants.RoleHod)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login successful", fiber.Map{
		"token": token,
		"user":  hod,
	})
}

// GET /Hod/profile/:id
func (hc *HodController) GetProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var hod model.HodModel
	if err := hc.DB.First(&hod, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "HOD profile fetched successfully", hod)
}

// PUT /Hod/update/:id
func (hc *HodController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var hod model.HodModel
	if err := hc.DB.First(&hod, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	var input dto.UpdateHodRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.ApplyTo(&hod)

	if err := hod.Validate(); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation error", err.Error())
	}

	if err := hc.DB.Save(&hod).Error; err != nil {
		log.Println("[ERROR] Failed to update HOD:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update HOD")
	}
	return helper.Success(c, "HOD updated successfully", hod)
}

// DELETE /Hod/delete/:id
func (hc *HodController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	tx := hc.DB.Delete(&model.HodModel{}, "id = ?", id)
	if tx.Error != nil {
		log.Println("[ERROR] Failed to delete HOD:", tx.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete HOD")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "User deleted successfully", fiber.Map{"id": id})
}
