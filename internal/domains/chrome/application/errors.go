package application

import "errors"

// ErrInvalidInput marks requests the chrome service refuses, such as
// unknown panel names.
var ErrInvalidInput = errors.New("invalid input")
