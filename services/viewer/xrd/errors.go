package xrd

import "errors"

// ErrInvalidDataURL signals an upload that is not a base64 data URL
var ErrInvalidDataURL = errors.New("invalid data URL")

// ErrNoDataRows signals a pattern file without any two-column numeric row
var ErrNoDataRows = errors.New("no numeric data rows")
