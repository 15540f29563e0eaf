package domain

import "errors"

// ErrNotFound marks a lookup for an id the store does not hold. Handlers map
// it to 404.
var ErrNotFound = errors.New("not found")
