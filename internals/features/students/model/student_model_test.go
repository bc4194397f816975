package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"nodues_backend/internals/constants"
)

func validStudent() StudentModel {
	return StudentModel{
		Firstname:   "Asha",
		Lastname:    "Verma",
		Email:       "asha.verma@example.edu",
		Password:    "supersecret",
		RollNumber:  "20cs123",
		Branch:      "Computer Science",
		Year:        "3rd",
		Section:     "a",
		Semester:    5,
		PhoneNumber: "9876543210",
		DOB:         datatypes.Date(time.Date(2004, 6, 15, 0, 0, 0, 0, time.UTC)),
	}
}

func TestStudentValidateNormalizes(t *testing.T) {
	s := validStudent()
	require.NoError(t, s.Validate())

	assert.Equal(t, "20CS123", s.RollNumber)
	assert.Equal(t, "asha.verma@example.edu", s.Email)
	assert.Equal(t, "A", s.Section)
	assert.Equal(t, constants.HodPending, s.HodApprovalStatus)
	assert.NotNil(t, s.Submissions)
}

func TestStudentValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StudentModel)
	}{
		{"missing first name", func(s *StudentModel) { s.Firstname = "" }},
		{"bad email", func(s *StudentModel) { s.Email = "not-an-email" }},
		{"short password", func(s *StudentModel) { s.Password = "short" }},
		{"section outside A-E", func(s *StudentModel) { s.Section = "F" }},
		{"semester zero", func(s *StudentModel) { s.Semester = 0 }},
		{"semester above eight", func(s *StudentModel) { s.Semester = 9 }},
		{"phone too short", func(s *StudentModel) { s.PhoneNumber = "12345" }},
		{"phone with letters", func(s *StudentModel) { s.PhoneNumber = "98765abc10" }},
		{"hod status outside enum", func(s *StudentModel) { s.HodApprovalStatus = "Done" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStudent()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestProfileColumnsNeverTouchClearanceState(t *testing.T) {
	s := validStudent()
	s.Submissions = SubmissionMap{"Maths": NewSubmissionTriple()}
	s.HodApprovalStatus = constants.HodApproved
	require.NoError(t, s.Validate())

	cols := s.ProfileColumns()

	assert.Equal(t, map[string]interface{}{
		"firstname":    "Asha",
		"lastname":     "Verma",
		"branch":       "Computer Science",
		"year":         "3rd",
		"section":      "A",
		"semester":     5,
		"phone_number": "9876543210",
	}, cols)

	// a profile update must never write these back from a stale read
	assert.NotContains(t, cols, "submissions")
	assert.NotContains(t, cols, "hod_approval_status")
	assert.NotContains(t, cols, "hod_approval_updated_at")
	assert.NotContains(t, cols, "password")
	assert.NotContains(t, cols, "email")
	assert.NotContains(t, cols, "roll_number")
}

func TestSubmissionMapRoundTrip(t *testing.T) {
	m := SubmissionMap{
		"Maths": {
			Assignment:   constants.ArtifactApproved,
			LabManual:    constants.ArtifactPending,
			Presentation: constants.ArtifactNotSubmitted,
		},
	}

	v, err := m.Value()
	require.NoError(t, err)

	var out SubmissionMap
	require.NoError(t, out.Scan(v))
	assert.Equal(t, m, out)
}

func TestSubmissionMapScanNil(t *testing.T) {
	var m SubmissionMap
	require.NoError(t, m.Scan(nil))
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestNewSubmissionTriple(t *testing.T) {
	tr := NewSubmissionTriple()
	assert.Equal(t, constants.ArtifactNotSubmitted, tr.Assignment)
	assert.Equal(t, constants.ArtifactNotSubmitted, tr.LabManual)
	assert.Equal(t, constants.ArtifactNotSubmitted, tr.Presentation)
}
