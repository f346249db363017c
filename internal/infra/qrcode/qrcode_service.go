package qrcode

import (
	"net/url"
	"strings"

	"shiptrack/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const trackingPath = "/track/"

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service that encodes links below
// baseURL. An empty baseURL encodes a relative path.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
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

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// TrackingURL returns the public tracking page link of code
func (s *qrcodeService) TrackingURL(code string) string {
	return s.baseURL + trackingPath + url.PathEscape(code)
}

// GenerateTrackingQR renders the tracking page link of code as a PNG
func (s *qrcodeService) GenerateTrackingQR(code string) ([]byte, error) {
	qrCode, err := qrcode.New(s.TrackingURL(code), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
