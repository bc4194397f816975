package service

import (
	"nodues_backend/internals/constants"
	studentModel "nodues_backend/internals/features/students/model"
)

// Summary is the derived clearance state of one student's ledger. It is
// never persisted; both the faculty and the HOD views compute it on read.
type Summary struct {
	AllApproved    bool   `json:"allApproved"`
	AnyRejected    bool   `json:"anyRejected"`
	Classification string `json:"classification"`
}

// Classify folds the submissions ledger into a classification:
//
//   - "Ready for Approval": every field of every subject is Approved and
//     the ledger is non-empty. An empty ledger is never ready: evidence
//     is required before a student can be cleared.
//   - "Has Rejected Items": any field anywhere is Rejected (OR across
//     subjects) and the ledger is not fully approved.
//   - "Incomplete": everything else.
func Classify(m studentModel.SubmissionMap) Summary {
	allApproved := len(m) > 0
	anyRejected := false

	for _, triple := range m {
		for _, v := range [3]string{triple.Assignment, triple.LabManual, triple.Presentation} {
			if v != constants.ArtifactApproved {
				allApproved = false
			}
			if v == constants.ArtifactRejected {
				anyRejected = true
			}
		}
	}

	classification := constants.ClassIncomplete
	switch {
	case allApproved:
		classification = constants.ClassReadyForApproval
	case anyRejected:
		classification = constants.ClassHasRejectedItems
	}

	return Summary{
		AllApproved:    allApproved,
		AnyRejected:    anyRejected,
		Classification: classification,
	}
}

// DisplayedStatus reconciles the stored HOD decision with the derived
// classification: an explicit Approved/Rejected is shown verbatim, while
// Pending (including after a reset) falls back to the derived value.
func DisplayedStatus(stored string, m studentModel.SubmissionMap) string {
	if stored == constants.HodApproved || stored == constants.HodRejected {
		return stored
	}
	return Classify(m).Classification
}
