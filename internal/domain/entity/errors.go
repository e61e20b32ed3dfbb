package entity

import "errors"

// ErrResourceNotFound is returned when a record references a resource id
// that has no directory in the logo store.
var ErrResourceNotFound = errors.New("resource logo directory not found")
