package wtns

import "errors"

var (
	ErrMalformedHeader     = errors.New("wtns: malformed header")
	ErrUnsupportedVersion  = errors.New("wtns: unsupported version")
	ErrInvalidSectionCount = errors.New("wtns: invalid section count")
	ErrInvalidSectionType  = errors.New("wtns: invalid section type")
	ErrInvalidSectionSize  = errors.New("wtns: invalid section size")
	ErrInvalidFieldSize    = errors.New("wtns: invalid field byte size")
)
