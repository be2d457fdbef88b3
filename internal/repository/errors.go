package repository

import "errors"

// ErrNotFound marks a requested key that has no row. The route layer maps it
// to 404; every other error passes through untranslated.
var ErrNotFound = errors.New("record not found")
