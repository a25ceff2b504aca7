package errors

import "fmt"

// Stable failure kinds surfaced by the service layer. The transport layer
// maps each kind to an HTTP status; causes are attached with
// fmt.Errorf("%w: %v", kind, cause) so errors.Is keeps working upstream.
var (
	ErrUnauthenticated = fmt.Errorf("unauthenticated")
	ErrForbidden       = fmt.Errorf("forbidden")
	ErrNotFound        = fmt.Errorf("not found")
	ErrConflict        = fmt.Errorf("conflict")
	ErrStorage         = fmt.Errorf("storage failure")
)
