package importcase

// VerificationState is the review state of one uploaded document for a case.
type VerificationState string

const (
	VerificationVerified VerificationState = "VERIFIED"
	VerificationPending  VerificationState = "PENDING"
)

// DocumentType describes one kind of customs document and the case statuses
// it must be verified for. Document types are configuration data maintained
// outside the orchestration core and consumed read-only here.
type DocumentType struct {
	Code                string
	Name                string
	RequiredForStatuses []Status
}

// RequiredFor reports whether this document type must be verified before the
// case may hold the given status.
func (d DocumentType) RequiredFor(status Status) bool {
	for _, s := range d.RequiredForStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// DocumentVerification is the review state of one document uploaded for a
// case, keyed by document type code.
type DocumentVerification struct {
	DocumentCode string
	State        VerificationState
}
