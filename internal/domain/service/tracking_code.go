package service

// TrackingCodeGenerator produces candidate tracking codes. Candidates are
// random; uniqueness is checked by the caller.
type TrackingCodeGenerator interface {
	Generate() (string, error)
}
