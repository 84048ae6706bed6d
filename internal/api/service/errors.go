package service

import "errors"

// ErrValidation marks a request that failed required-field validation.
// The wrapped message names the offending fields.
var ErrValidation = errors.New("validation failed")
