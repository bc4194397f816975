package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nodues_backend/internals/constants"
	studentModel "nodues_backend/internals/features/students/model"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrEmptySubject    = errors.New("subject must not be empty")
	ErrEmptyPatch      = errors.New("at least one artifact field must be provided")
)

// StatusPatch carries the fields of one subject's triple to overwrite.
// Empty fields are left untouched.
type StatusPatch struct {
	Assignment   string `json:"assignment,omitempty"`
	LabManual    string `json:"labManual,omitempty"`
	Presentation string `json:"presentation,omitempty"`
}

func (p StatusPatch) IsEmpty() bool {
	return p.Assignment == "" && p.LabManual == "" && p.Presentation == ""
}

// Validate rejects any provided value outside the artifact-status enum.
func (p StatusPatch) Validate() error {
	for _, v := range [3]string{p.Assignment, p.LabManual, p.Presentation} {
		if v != "" && !constants.IsValidArtifactStatus(v) {
			return fmt.Errorf("invalid artifact status %q", v)
		}
	}
	return nil
}

// ApplyStatusUpdate returns a copy of the ledger with the patch applied
// to one subject: the subject entry is created with "Not Submitted"
// defaults when missing, then exactly the provided fields are
// overwritten. Other subjects and untouched fields are never perturbed.
// This is the in-memory mirror of the jsonb_set update below.
func ApplyStatusUpdate(m studentModel.SubmissionMap, subject string, patch StatusPatch) studentModel.SubmissionMap {
	out := make(studentModel.SubmissionMap, len(m)+1)
	for k, v := range m {
		out[k] = v
	}

	triple, ok := out[subject]
	if !ok {
		triple = studentModel.NewSubmissionTriple()
	}
	if patch.Assignment != "" {
		triple.Assignment = patch.Assignment
	}
	if patch.LabManual != "" {
		triple.LabManual = patch.LabManual
	}
	if patch.Presentation != "" {
		triple.Presentation = patch.Presentation
	}
	out[subject] = triple
	return out
}

const defaultTripleJSON = `{"assignment":"Not Submitted","labManual":"Not Submitted","presentation":"Not Submitted"}`

// SetArtifactStatuses upserts one subject's entry in the student's
// submissions ledger with a single UPDATE. The jsonb_set is scoped to the
// subject key, so concurrent writers on other subjects (or on other
// fields of the same subject) never lose each other's writes: Postgres
// serializes the row updates and each statement re-reads the current
// column value.
func SetArtifactStatuses(db *gorm.DB, studentID uuid.UUID, subject string, patch StatusPatch) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ErrEmptySubject
	}
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	patchJSON, err := sonic.Marshal(patch)
	if err != nil {
		return err
	}

	res := db.Exec(`
		UPDATE students
		   SET submissions = jsonb_set(
		         COALESCE(submissions, '{}'::jsonb),
		         ARRAY[?]::text[],
		         COALESCE(submissions -> ?, ?::jsonb) || ?::jsonb
		       ),
		       updated_at = NOW()
		 WHERE id = ?`,
		subject, subject, defaultTripleJSON, string(patchJSON), studentID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// SetHodApprovalStatus writes the department-level decision flag. Every
// transition, including a reset back to Pending, touches the timestamp.
func SetHodApprovalStatus(db *gorm.DB, studentID uuid.UUID, status string) error {
	if !constants.IsValidHodStatus(status) {
		return fmt.Errorf("invalid status value %q", status)
	}

	res := db.Model(&studentModel.StudentModel{}).
		Where("id = ?", studentID).
		Updates(map[string]interface{}{
			"hod_approval_status":     status,
			"hod_approval_updated_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}
