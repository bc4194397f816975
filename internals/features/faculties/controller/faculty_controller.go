package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nodues_backend/internals/constants"
	"nodues_backend/internals/features/faculties/dto"
	"nodues_backend/internals/features/faculties/model"
	helper "nodues_backend/internals/helpers"
	osshelper "nodues_backend/internals/helpers/oss"
)

type FacultyController struct {
	DB   *gorm.DB
	Blob osshelper.BlobService
}

func NewFacultyController(db *gorm.DB, blob osshelper.BlobService) *FacultyController {
	return &FacultyController{DB: db, Blob: blob}
}

// POST /Faculty/register
func (fc *FacultyController) Register(c *fiber.Ctx) error {
	var input dto.RegisterFacultyRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}

	faculty := input.ToModel()
	if err := faculty.Validate(); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation error", err.Error())
	}

	var existing model.FacultyModel
	err := fc.DB.Where("email = ? OR employee_id = ?", faculty.Email, faculty.EmployeeID).First(&existing).Error
	if err == nil {
		if existing.EmployeeID == faculty.EmployeeID {
			return helper.Error(c, fiber.StatusBadRequest, "Employee ID already registered")
		}
		return helper.Error(c, fiber.StatusBadRequest, "User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Duplicate check failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during registration")
	}

	hashed, err := helper.HashPassword(faculty.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	faculty.Password = hashed

	if err := fc.DB.Create(faculty).Error; err != nil {
		if constraint, ok := helper.IsUniqueViolation(err); ok {
			if strings.Contains(constraint, "employee_id") {
				return helper.Error(c, fiber.StatusBadRequest, "Employee ID already registered")
			}
			return helper.Error(c, fiber.StatusBadRequest, "User already exists")
		}
		log.Println("[ERROR] Failed to create faculty:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error during registration")
	}

	token, err := helper.IssueToken(faculty.ID, constants.RoleFaculty)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	log.Printf("[SUCCESS] Registered faculty %s (%s)\n", faculty.EmployeeID, faculty.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Faculty registered successfully", fiber.Map{
		"token":   token,
		"faculty": faculty,
	})
}

// POST /Faculty/login
func (fc *FacultyController) Login(c *fiber.Ctx) error {
	var input dto.LoginFacultyRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}

	var faculty model.FacultyModel
	if err := fc.DB.Preload("TeachingDetails").
		First(&faculty, "employee_id = ?", strings.TrimSpace(input.EmployeeID)).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "User not found")
	}

	if err := helper.CheckPasswordHash(faculty.Password, input.Password); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid password")
	}

	token, err := helper.IssueToken(faculty.ID, constants.RoleFaculty)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login successful", fiber.Map{
		"token":   token,
		"faculty": faculty,
	})
}

// GET /Faculty/getProfile/:id
func (fc *FacultyController) GetProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var faculty model.FacultyModel
	if err := fc.DB.Preload("TeachingDetails").First(&faculty, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "Faculty profile fetched successfully", faculty)
}

// PUT /Faculty/update/:id
func (fc *FacultyController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var faculty model.FacultyModel
	if err := fc.DB.Preload("TeachingDetails").First(&faculty, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	var input dto.UpdateFacultyRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.ApplyTo(&faculty)

	if input.Password != nil && *input.Password != "" {
		hashed, err := helper.HashPassword(*input.Password)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		faculty.Password = hashed
	}

	if err := faculty.Validate(); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation error", err.Error())
	}

	if err := fc.DB.Omit("TeachingDetails").Save(&faculty).Error; err != nil {
		log.Println("[ERROR] Failed to update faculty:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update faculty")
	}
	return helper.Success(c, "Faculty updated successfully", faculty)
}

// DELETE /Faculty/delete/:id (teaching details go with the record)
func (fc *FacultyController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	tx := fc.DB.Select("TeachingDetails").Delete(&model.FacultyModel{ID: uuid.MustParse(id)})
	if tx.Error != nil {
		log.Println("[ERROR] Failed to delete faculty:", tx.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete faculty")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "User deleted successfully", fiber.Map{"id": id})
}

// POST /Faculty/:id/addTeachingDetail
func (fc *FacultyController) AddTeachingDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var faculty model.FacultyModel
	if err := fc.DB.First(&faculty, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Faculty not found")
	}

	var input dto.AddTeachingDetailRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}

	detail := model.TeachingDetailModel{
		FacultyID: faculty.ID,
		Semester:  input.Semester,
		Section:   input.Section,
		Subject:   input.Subject,
	}
	if err := detail.Validate(); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation error", err.Error())
	}

	if err := fc.DB.Create(&detail).Error; err != nil {
		log.Println("[ERROR] Failed to add teaching detail:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to add teaching detail")
	}

	var details []model.TeachingDetailModel
	if err := fc.DB.Where("faculty_id = ?", faculty.ID).Order("created_at ASC").Find(&details).Error; err != nil {
		log.Println("[ERROR] Failed to refresh teaching details:", err)
	}
	faculty.TeachingDetails = details

	return helper.Success(c, "Teaching details added successfully", fiber.Map{
		"faculty": faculty,
		"detail":  detail,
	})
}

// GET /Faculty/:id/getTeachingDetails
func (fc *FacultyController) GetTeachingDetails(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var faculty model.FacultyModel
	if err := fc.DB.First(&faculty, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Faculty not found")
	}

	var details []model.TeachingDetailModel
	if err := fc.DB.Where("faculty_id = ?", id).Order("created_at ASC").Find(&details).Error; err != nil {
		log.Println("[ERROR] Failed to fetch teaching details:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch teaching details")
	}
	return helper.Success(c, "Teaching details fetched successfully", details)
}

// DELETE /Faculty/:id/deleteTeachingDetail/:detailId
func (fc *FacultyController) DeleteTeachingDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}
	detailID, err := uuid.Parse(c.Params("detailId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var faculty model.FacultyModel
	if err := fc.DB.First(&faculty, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Faculty not found")
	}

	tx := fc.DB.Delete(&model.TeachingDetailModel{}, "id = ? AND faculty_id = ?", detailID, id)
	if tx.Error != nil {
		log.Println("[ERROR] Failed to delete teaching detail:", tx.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete teaching detail")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Teaching detail not found")
	}

	var details []model.TeachingDetailModel
	if err := fc.DB.Where("faculty_id = ?", id).Order("created_at ASC").Find(&details).Error; err != nil {
		log.Println("[ERROR] Failed to refresh teaching details:", err)
	}
	faculty.TeachingDetails = details

	return helper.Success(c, "Teaching detail deleted successfully", fiber.Map{
		"faculty":                faculty,
		"updatedTeachingDetails": details,
	})
}

// PUT /Faculty/updatePhoto/:id: multipart; the old blob is removed only
// after the new upload succeeded
func (fc *FacultyController) UpdatePhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	if fc.Blob == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Photo storage is not configured")
	}

	var faculty model.FacultyModel
	if err := fc.DB.First(&faculty, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	fh, err := osshelper.GetImageFile(c, "photo", "image", "file")
	if err != nil {
		return err
	}
	if fh == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Photo file is required")
	}

	url, key, err := fc.Blob.UploadPhoto(c.UserContext(), "no-dues/faculty", fh)
	if err != nil {
		return err
	}

	oldKey := faculty.PhotoPublicID
	faculty.Photo = &url
	faculty.PhotoPublicID = &key
	if err := fc.DB.Model(&faculty).Updates(map[string]interface{}{
		"photo":           url,
		"photo_public_id": key,
	}).Error; err != nil {
		log.Println("[ERROR] Failed to store photo reference:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update photo")
	}

	if oldKey != nil && *oldKey != "" && *oldKey != key {
		if err := fc.Blob.DeleteByKey(c.UserContext(), *oldKey); err != nil {
			log.Println("[ERROR] Failed to delete previous photo:", err)
		}
	}

	return helper.Success(c, "Photo updated successfully", fiber.Map{
		"faculty": faculty,
		"photo":   url,
	})
}

// GET /Faculty/list?department=
func (fc *FacultyController) GetAllFaculty(c *fiber.Ctx) error {
	q := fc.DB.Preload("TeachingDetails").Order("last_name ASC, first_name ASC")
	if dep := strings.TrimSpace(c.Query("department")); dep != "" {
		q = q.Where("department = ?", dep)
	}

	var faculties []model.FacultyModel
	if err := q.Find(&faculties).Error; err != nil {
		log.Println("[ERROR] Failed to fetch faculty list:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve faculty list")
	}
	return helper.Success(c, "Faculty list fetched successfully", faculties)
}

// GET /Faculty/bySubject/:subject
func (fc *FacultyController) GetFacultyBySubject(c *fiber.Ctx) error {
	subject := strings.TrimSpace(c.Params("subject"))
	if subject == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Subject must not be empty")
	}

	var faculties []model.FacultyModel
	if err := fc.DB.Preload("TeachingDetails").
		Joins("JOIN faculty_teaching_details td ON td.faculty_id = faculties.id").
		Where("td.subject = ?", subject).
		Distinct("faculties.*").
		Find(&faculties).Error; err != nil {
		log.Println("[ERROR] Failed to fetch faculty by subject:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve faculty list")
	}
	return helper.Success(c, "Faculty list fetched successfully", faculties)
}

// GET /Faculty/bySemesterSection/:semester/:section. The teachingDetails
// in the payload are filtered down to the matching entries.
func (fc *FacultyController) GetFacultyBySemesterSection(c *fiber.Ctx) error {
	semester, err := strconv.Atoi(c.Params("semester"))
	if err != nil || semester < 1 || semester > 8 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid semester")
	}
	section := strings.ToUpper(strings.TrimSpace(c.Params("section")))

	var faculties []model.FacultyModel
	if err := fc.DB.Preload("TeachingDetails").
		Joins("JOIN faculty_teaching_details td ON td.faculty_id = faculties.id").
		Where("td.semester = ? AND td.section = ?", semester, section).
		Distinct("faculties.*").
		Find(&faculties).Error; err != nil {
		log.Println("[ERROR] Failed to fetch faculty by class:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve faculty list")
	}

	for i := range faculties {
		var matching []model.TeachingDetailModel
		for _, d := range faculties[i].TeachingDetails {
			if d.Semester == semester && strings.EqualFold(d.Section, section) {
				matching = append(matching, d)
			}
		}
		faculties[i].TeachingDetails = matching
	}
	return helper.Success(c, "Faculty list fetched successfully", faculties)
}
