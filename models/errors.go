package models

import "errors"

// Domain error kinds. Every failure a service returns wraps exactly one
// of these so handlers can map it to a status code with errors.Is.
// Infrastructure errors (broken connection etc.) pass through unwrapped.
var (
	ErrValidation           = errors.New("validation failed")
	ErrDuplicateAssociation = errors.New("duplicate association")
	ErrUnknownReference     = errors.New("unknown reference")
	ErrConflict             = errors.New("conflict")
	ErrAbsentRelation       = errors.New("relation does not exist")
	ErrAuthorization        = errors.New("not allowed")
)
