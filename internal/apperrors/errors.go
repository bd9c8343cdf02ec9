package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConfigLoad indicates that startup data (such as the rate file) could not be
// read or parsed. It is fatal: the service must not start serving.
var ErrConfigLoad = errors.New("config load error")
