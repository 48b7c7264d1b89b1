package qrcode

import (
	"encoding/json"
	"fmt"

	"passfit/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// codeTypeCheckIn is the required "type" discriminator in check-in payloads.
const codeTypeCheckIn = "checkin"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// CheckInCodeData is the wire shape of a studio check-in QR payload. Anything
// that does not decode to this shape is rejected before the ledger is touched.
type CheckInCodeData struct {
	Type     string `json:"type"`
	StudioID string `json:"studioId"`
}

// NewCheckInCodeService creates a new check-in QR code service instance
func NewCheckInCodeService(size int, errorCorrectionLevel string) service.CheckInCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateCheckInCode renders the studio's check-in code as a PNG image.
func (s *qrcodeService) GenerateCheckInCode(studioID string) ([]byte, error) {
	data := CheckInCodeData{
		Type:     codeTypeCheckIn,
		StudioID: studioID,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal check-in code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCheckInCode decodes a scanned payload and returns the studio ID.
func (s *qrcodeService) ParseCheckInCode(payload string) (string, error) {
	var data CheckInCodeData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal check-in code data: %w", err)
	}

	if data.Type != codeTypeCheckIn {
		return "", fmt.Errorf("invalid check-in code type: %q", data.Type)
	}
	if data.StudioID == "" {
		return "", fmt.Errorf("check-in code is missing the studio ID")
	}

	return data.StudioID, nil
}
