package constants

// Per-artifact submission statuses stored inside the submissions ledger.
const (
	ArtifactNotSubmitted = "Not Submitted"
	ArtifactPending      = "Pending"
	ArtifactApproved     = "Approved"
	ArtifactRejected     = "Rejected"
)

// Stored HOD decision values.
const (
	HodPending  = "Pending"
	HodApproved = "Approved"
	HodRejected = "Rejected"
)

// Derived classifications (never persisted, computed on read).
const (
	ClassReadyForApproval = "Ready for Approval"
	ClassHasRejectedItems = "Has Rejected Items"
	ClassIncomplete       = "Incomplete"
)

var (
	ArtifactStatuses = []string{ArtifactNotSubmitted, ArtifactPending, ArtifactApproved, ArtifactRejected}
	HodStatuses      = []string{HodPending, HodApproved, HodRejected}
	Sections         = []string{"A", "B", "C", "D", "E"}
)

func IsValidArtifactStatus(v string) bool {
	for _, s := range ArtifactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func IsValidHodStatus(v string) bool {
	for _, s := range HodStatuses {
		if s == v {
			return true
		}
	}
	return false
}
