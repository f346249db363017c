package service

// QRCodeService renders tracking links as QR codes.
type QRCodeService interface {
	// TrackingURL is the public tracking page address encoded for code.
	TrackingURL(code string) string

	// GenerateTrackingQR returns a PNG that encodes the tracking page of code.
	GenerateTrackingQR(code string) ([]byte, error)
}
