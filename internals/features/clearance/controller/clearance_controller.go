package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nodues_backend/internals/constants"
	"nodues_backend/internals/features/clearance/dto"
	service "nodues_backend/internals/features/clearance/service"
	facultyModel "nodues_backend/internals/features/faculties/model"
	hodModel "nodues_backend/internals/features/hods/model"
	studentModel "nodues_backend/internals/features/students/model"
	helper "nodues_backend/internals/helpers"
	authmw "nodues_backend/internals/middlewares/auth"
)

// ClearanceController owns the submission ledger mutations and the
// derived clearance views.
type ClearanceController struct {
	DB *gorm.DB
}

func NewClearanceController(db *gorm.DB) *ClearanceController {
	return &ClearanceController{DB: db}
}

func callerID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(authmw.LocUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

// POST /Student/updateStatus (auth: faculty)
//
// Upserts one subject entry in the student's ledger and overwrites
// exactly the provided artifact fields. The write is allowed only when
// the calling faculty teaches that subject to the student's class.
func (cc *ClearanceController) UpdateStatus(c *fiber.Ctx) error {
	var input dto.UpdateStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}

	studentID, err := uuid.Parse(strings.TrimSpace(input.StudentID))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid studentId")
	}
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return helper.Error(c, fiber.StatusBadRequest, "subject is required")
	}
	patch := input.Patch()
	if patch.IsEmpty() {
		return helper.Error(c, fiber.StatusBadRequest, "At least one of assignment, labManual, presentation is required")
	}
	if err := patch.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var student studentModel.StudentModel
	if err := cc.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	facultyID, err := callerID(c)
	if err != nil {
		return err
	}
	var faculty facultyModel.FacultyModel
	if err := cc.DB.Preload("TeachingDetails").First(&faculty, "id = ?", facultyID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Faculty not found")
	}

	if err := service.CanJudgeSubmission(&faculty, &student, subject); err != nil {
		return helper.Error(c, fiber.StatusForbidden, err.Error())
	}

	if err := service.SetArtifactStatuses(cc.DB, studentID, subject, patch); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] Failed to update submission status:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while updating status")
	}

	// mirror the applied patch for the response instead of re-reading
	student.Submissions = service.ApplyStatusUpdate(student.Submissions, subject, patch)

	return helper.Success(c, "Status updated successfully", fiber.Map{
		"student": student,
		"summary": service.Classify(student.Submissions),
	})
}

// POST /Student/updateHodApprovalStatus (auth: hod)
//
// Sets the stored decision flag. Any of Pending/Approved/Rejected is
// accepted; a Pending write is the "reset" that makes the displayed
// status fall back to the derived classification.
func (cc *ClearanceController) UpdateHodApprovalStatus(c *fiber.Ctx) error {
	var input dto.UpdateHodApprovalRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if strings.TrimSpace(input.StudentID) == "" || strings.TrimSpace(input.Status) == "" {
		return helper.Error(c, fiber.StatusBadRequest, "studentId and status are required")
	}
	studentID, err := uuid.Parse(strings.TrimSpace(input.StudentID))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid studentId")
	}
	if !constants.IsValidHodStatus(input.Status) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid status value")
	}

	var student studentModel.StudentModel
	if err := cc.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	hodID, err := callerID(c)
	if err != nil {
		return err
	}
	var hod hodModel.HodModel
	if err := cc.DB.First(&hod, "id = ?", hodID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - HOD not found")
	}

	if err := service.CanDecideClearance(&hod, &student); err != nil {
		return helper.Error(c, fiber.StatusForbidden, err.Error())
	}

	if err := service.SetHodApprovalStatus(cc.DB, studentID, input.Status); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] Failed to update HOD approval status:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while updating HOD approval status")
	}

	if err := cc.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.Success(c, "HOD approval status updated successfully", fiber.Map{
		"student":         student,
		"displayedStatus": service.DisplayedStatus(student.HodApprovalStatus, student.Submissions),
	})
}

// GET /Student/clearance/:id: ledger plus derived state for one student
func (cc *ClearanceController) GetStudentClearance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var student studentModel.StudentModel
	if err := cc.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	summary := service.Classify(student.Submissions)
	return helper.Success(c, "Clearance fetched successfully", dto.ClearanceView{
		Student:         &student,
		Summary:         summary,
		DisplayedStatus: service.DisplayedStatus(student.HodApprovalStatus, student.Submissions),
	})
}

// GET /Hod/students (auth: hod). The approval screen feed: every
// student of the HOD's department with displayed status.
func (cc *ClearanceController) GetDepartmentStudents(c *fiber.Ctx) error {
	hodID, err := callerID(c)
	if err != nil {
		return err
	}
	var hod hodModel.HodModel
	if err := cc.DB.First(&hod, "id = ?", hodID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - HOD not found")
	}

	// same normalization as CanDecideClearance: every student the HOD may
	// decide on has to show up in this feed
	var students []studentModel.StudentModel
	if err := cc.DB.Where("LOWER(TRIM(branch)) = LOWER(TRIM(?))", hod.Department).Order("roll_number ASC").Find(&students).Error; err != nil {
		log.Println("[ERROR] Failed to fetch department students:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	views := make([]dto.ClearanceView, 0, len(students))
	for i := range students {
		s := &students[i]
		views = append(views, dto.ClearanceView{
			Student:         s,
			Summary:         service.Classify(s.Submissions),
			DisplayedStatus: service.DisplayedStatus(s.HodApprovalStatus, s.Submissions),
		})
	}

	return helper.Success(c, "Department students fetched successfully", fiber.Map{
		"department": hod.Department,
		"total":      len(views),
		"students":   views,
	})
}

// GET /Faculty/:id/students: students in the faculty's (semester,
// section) pairs, each with the subjects this faculty teaches them
func (cc *ClearanceController) GetFacultyStudents(c *fiber.Ctx) error {
	facultyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var faculty facultyModel.FacultyModel
	if err := cc.DB.Preload("TeachingDetails").First(&faculty, "id = ?", facultyID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Faculty not found")
	}

	pairs := service.EligiblePairs(faculty.TeachingDetails)
	if len(pairs) == 0 {
		return helper.Success(c, "Faculty students fetched successfully", fiber.Map{
			"total":    0,
			"students": []dto.FacultyStudentView{},
		})
	}

	cond := cc.DB.Where("semester = ? AND section = ?", pairs[0].Semester, pairs[0].Section)
	for _, p := range pairs[1:] {
		cond = cond.Or("semester = ? AND section = ?", p.Semester, p.Section)
	}

	var students []studentModel.StudentModel
	if err := cc.DB.Where(cond).Order("roll_number ASC").Find(&students).Error; err != nil {
		log.Println("[ERROR] Failed to fetch faculty students:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	views := make([]dto.FacultyStudentView, 0, len(students))
	for i := range students {
		s := &students[i]
		views = append(views, dto.FacultyStudentView{
			Student:  s,
			Subjects: service.SubjectsFor(faculty.TeachingDetails, s.Semester, s.Section),
		})
	}

	return helper.Success(c, "Faculty students fetched successfully", fiber.Map{
		"total":    len(views),
		"students": views,
	})
}
