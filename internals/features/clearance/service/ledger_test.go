package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodues_backend/internals/constants"
	studentModel "nodues_backend/internals/features/students/model"
)

func TestStatusPatchValidate(t *testing.T) {
	assert.NoError(t, StatusPatch{}.Validate())
	assert.NoError(t, StatusPatch{Assignment: constants.ArtifactApproved}.Validate())
	assert.NoError(t, StatusPatch{
		Assignment:   constants.ArtifactNotSubmitted,
		LabManual:    constants.ArtifactPending,
		Presentation: constants.ArtifactRejected,
	}.Validate())

	assert.Error(t, StatusPatch{Assignment: "approved"}.Validate(), "enum values are case sensitive")
	assert.Error(t, StatusPatch{LabManual: "Done"}.Validate())
}

func TestStatusPatchIsEmpty(t *testing.T) {
	assert.True(t, StatusPatch{}.IsEmpty())
	assert.False(t, StatusPatch{Presentation: constants.ArtifactPending}.IsEmpty())
}

func TestApplyStatusUpdateCreatesSubjectWithDefaults(t *testing.T) {
	out := ApplyStatusUpdate(studentModel.SubmissionMap{}, "Maths", StatusPatch{Assignment: constants.ArtifactPending})

	require.Contains(t, out, "Maths")
	assert.Equal(t, constants.ArtifactPending, out["Maths"].Assignment)
	assert.Equal(t, constants.ArtifactNotSubmitted, out["Maths"].LabManual)
	assert.Equal(t, constants.ArtifactNotSubmitted, out["Maths"].Presentation)
}

func TestApplyStatusUpdateLeavesOtherEntriesAlone(t *testing.T) {
	in := studentModel.SubmissionMap{
		"Maths":   triple(constants.ArtifactApproved, constants.ArtifactPending, constants.ArtifactApproved),
		"Physics": approvedTriple(),
	}

	out := ApplyStatusUpdate(in, "Maths", StatusPatch{LabManual: constants.ArtifactApproved})

	// Only the patched field of the patched subject changes.
	assert.Equal(t, constants.ArtifactApproved, out["Maths"].LabManual)
	assert.Equal(t, constants.ArtifactApproved, out["Maths"].Assignment)
	assert.Equal(t, constants.ArtifactApproved, out["Maths"].Presentation)
	assert.Equal(t, approvedTriple(), out["Physics"])

	// The input ledger is never mutated.
	assert.Equal(t, constants.ArtifactPending, in["Maths"].LabManual)
}

func TestApplyStatusUpdateIsIdempotent(t *testing.T) {
	in := studentModel.SubmissionMap{"Maths": studentModel.NewSubmissionTriple()}
	patch := StatusPatch{Assignment: constants.ArtifactApproved, Presentation: constants.ArtifactRejected}

	once := ApplyStatusUpdate(in, "Maths", patch)
	twice := ApplyStatusUpdate(once, "Maths", patch)

	assert.Equal(t, once, twice)
}

func TestApplyStatusUpdateDisjointSubjectsCommute(t *testing.T) {
	in := studentModel.SubmissionMap{}
	a := StatusPatch{Assignment: constants.ArtifactApproved}
	b := StatusPatch{LabManual: constants.ArtifactRejected}

	ab := ApplyStatusUpdate(ApplyStatusUpdate(in, "Maths", a), "Physics", b)
	ba := ApplyStatusUpdate(ApplyStatusUpdate(in, "Physics", b), "Maths", a)

	assert.Equal(t, ab, ba)
}

func TestApplyStatusUpdateNilLedger(t *testing.T) {
	out := ApplyStatusUpdate(nil, "Maths", StatusPatch{Assignment: constants.ArtifactPending})
	require.Len(t, out, 1)
	assert.Equal(t, constants.ArtifactPending, out["Maths"].Assignment)
}
