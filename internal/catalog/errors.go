package catalog

import "errors"

var (
	ErrDirectoryUnavailable = errors.New("face directory unavailable")
	ErrIndexUnavailable     = errors.New("drive index unavailable")
	ErrUnsupportedSource    = errors.New("unsupported source location")
)
