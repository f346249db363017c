package entity

import (
	"fmt"
	"regexp"
)

const (
	// TrackingCodePrefix starts every tracking code.
	TrackingCodePrefix = "TKS"

	// TrackingCodeLength is the number of random characters after the prefix.
	TrackingCodeLength = 8

	// TrackingCodeAlphabet is the character set of the random suffix.
	TrackingCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var trackingCodePattern = regexp.MustCompile(fmt.Sprintf(`^%s-[%s]{%d}$`,
	regexp.QuoteMeta(TrackingCodePrefix), regexp.QuoteMeta(TrackingCodeAlphabet), TrackingCodeLength))

// IsValidTrackingCode reports whether code has the PREFIX-XXXXXXXX format.
func IsValidTrackingCode(code string) bool {
	return trackingCodePattern.MatchString(code)
}
