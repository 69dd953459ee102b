package assessments

import "errors"

var ErrNotFound = errors.New("not found")

const (
	ErrorCodeNotFound   = "not_found"
	ErrorCodeValidation = "validation_error"
	ErrorCodeExport     = "export_failed"
	ErrorCodeInternal   = "internal_error"
)
