package service

// CheckInCodeService defines the interface for studio check-in QR codes.
type CheckInCodeService interface {
	// GenerateCheckInCode renders the studio's check-in code as a PNG image.
	GenerateCheckInCode(studioID string) ([]byte, error)

	// ParseCheckInCode decodes a scanned payload and returns the studio ID.
	// Any payload that is not a well-formed check-in code is rejected before
	// the ledger is touched.
	ParseCheckInCode(payload string) (string, error)
}
