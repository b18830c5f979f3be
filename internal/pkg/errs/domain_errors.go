package errs

import "errors"

// Cross-layer sentinels; usecases mark concrete failures with these so handlers can
// map them without importing infra.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)
