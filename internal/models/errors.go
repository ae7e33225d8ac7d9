package models

import "errors"

// ErrPostNotFound is returned when an operation targets an id that does
// not exist in the store.
var ErrPostNotFound = errors.New("post not found")
