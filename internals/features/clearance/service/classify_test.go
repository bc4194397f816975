package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nodues_backend/internals/constants"
	studentModel "nodues_backend/internals/features/students/model"
)

func triple(a, l, p string) studentModel.SubmissionTriple {
	return studentModel.SubmissionTriple{Assignment: a, LabManual: l, Presentation: p}
}

func approvedTriple() studentModel.SubmissionTriple {
	return triple(constants.ArtifactApproved, constants.ArtifactApproved, constants.ArtifactApproved)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		m    studentModel.SubmissionMap
		want Summary
	}{
		{
			name: "nil ledger is incomplete, never ready",
			m:    nil,
			want: Summary{AllApproved: false, AnyRejected: false, Classification: constants.ClassIncomplete},
		},
		{
			name: "empty ledger is incomplete, never ready",
			m:    studentModel.SubmissionMap{},
			want: Summary{AllApproved: false, AnyRejected: false, Classification: constants.ClassIncomplete},
		},
		{
			name: "every field approved across subjects is ready",
			m: studentModel.SubmissionMap{
				"Maths":   approvedTriple(),
				"Physics": approvedTriple(),
			},
			want: Summary{AllApproved: true, AnyRejected: false, Classification: constants.ClassReadyForApproval},
		},
		{
			name: "single pending field breaks readiness",
			m: studentModel.SubmissionMap{
				"Maths":   approvedTriple(),
				"Physics": triple(constants.ArtifactApproved, constants.ArtifactPending, constants.ArtifactApproved),
			},
			want: Summary{AllApproved: false, AnyRejected: false, Classification: constants.ClassIncomplete},
		},
		{
			name: "one rejection anywhere classifies the whole ledger",
			m: studentModel.SubmissionMap{
				"Maths":   approvedTriple(),
				"Physics": triple(constants.ArtifactApproved, constants.ArtifactApproved, constants.ArtifactRejected),
			},
			want: Summary{AllApproved: false, AnyRejected: true, Classification: constants.ClassHasRejectedItems},
		},
		{
			name: "rejection wins over other incompleteness",
			m: studentModel.SubmissionMap{
				"Maths": triple(constants.ArtifactNotSubmitted, constants.ArtifactRejected, constants.ArtifactPending),
			},
			want: Summary{AllApproved: false, AnyRejected: true, Classification: constants.ClassHasRejectedItems},
		},
		{
			name: "fresh triple with defaults is incomplete",
			m: studentModel.SubmissionMap{
				"Maths": studentModel.NewSubmissionTriple(),
			},
			want: Summary{AllApproved: false, AnyRejected: false, Classification: constants.ClassIncomplete},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.m))
		})
	}
}

func TestDisplayedStatus(t *testing.T) {
	ready := studentModel.SubmissionMap{"Maths": approvedTriple()}
	rejected := studentModel.SubmissionMap{
		"Maths": triple(constants.ArtifactRejected, constants.ArtifactApproved, constants.ArtifactApproved),
	}

	// An explicit decision is shown verbatim, even against the derived state.
	assert.Equal(t, constants.HodApproved, DisplayedStatus(constants.HodApproved, rejected))
	assert.Equal(t, constants.HodRejected, DisplayedStatus(constants.HodRejected, ready))

	// Pending falls back to the derived classification.
	assert.Equal(t, constants.ClassReadyForApproval, DisplayedStatus(constants.HodPending, ready))
	assert.Equal(t, constants.ClassHasRejectedItems, DisplayedStatus(constants.HodPending, rejected))
	assert.Equal(t, constants.ClassIncomplete, DisplayedStatus(constants.HodPending, nil))

	// A value outside the enum behaves like Pending.
	assert.Equal(t, constants.ClassReadyForApproval, DisplayedStatus("", ready))
}

// Walks one ledger through the full faculty/HOD lifecycle and checks the
// derived view at each step.
func TestClearanceLifecycle(t *testing.T) {
	m := studentModel.SubmissionMap{}
	stored := constants.HodPending

	assert.Equal(t, constants.ClassIncomplete, DisplayedStatus(stored, m))

	m = ApplyStatusUpdate(m, "Maths", StatusPatch{Assignment: constants.ArtifactPending})
	assert.Equal(t, constants.ClassIncomplete, DisplayedStatus(stored, m))

	m = ApplyStatusUpdate(m, "Maths", StatusPatch{Assignment: constants.ArtifactRejected})
	assert.Equal(t, constants.ClassHasRejectedItems, DisplayedStatus(stored, m))

	m = ApplyStatusUpdate(m, "Maths", StatusPatch{
		Assignment:   constants.ArtifactApproved,
		LabManual:    constants.ArtifactApproved,
		Presentation: constants.ArtifactApproved,
	})
	assert.Equal(t, constants.ClassReadyForApproval, DisplayedStatus(stored, m))

	stored = constants.HodApproved
	assert.Equal(t, constants.HodApproved, DisplayedStatus(stored, m))

	// A later rejection does not override the stored decision until the
	// HOD resets it back to Pending.
	m = ApplyStatusUpdate(m, "Physics", StatusPatch{LabManual: constants.ArtifactRejected})
	assert.Equal(t, constants.HodApproved, DisplayedStatus(stored, m))

	stored = constants.HodPending
	assert.Equal(t, constants.ClassHasRejectedItems, DisplayedStatus(stored, m))
}
