package domain

import "errors"

// ErrUnsupportedFormat is returned for uploads whose extension has no parser.
var ErrUnsupportedFormat = errors.New("unsupported file type")
