// Package formats provides decoders for the proprietary model file formats
// handled by uvee: the skinned-mesh binary format (.skn) and the static-object
// format in its text (.sco) and binary (.scb) variants.
//
// All decoders read sequentially from an in-memory buffer, surface the first
// error they hit, and never return a partially decoded result. Every pad and
// conditional skip a format requires is declared in layout.go rather than
// inlined as a bare length.
package formats

import (
	"errors"
	"fmt"
)

// Decode errors shared by all format parsers. Wrapped errors always match
// these sentinels through errors.Is.
var (
	// ErrBadMagic is returned when a file does not start with the magic
	// number or marker line of its format.
	ErrBadMagic = errors.New("bad file magic")

	// ErrUnsupportedVersion is returned when the header version pair is
	// outside the accepted set for the format.
	ErrUnsupportedVersion = errors.New("unsupported file version")

	// ErrMisalignedIndex is returned when a triangle index count is not a
	// multiple of three.
	ErrMisalignedIndex = errors.New("index count not divisible by 3")

	// ErrTruncatedInput is returned when the input ends before a required
	// field.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrMalformedBlock is returned by the text decoder when a declared
	// block count exceeds the remaining lines or a token fails to parse.
	ErrMalformedBlock = errors.New("malformed block")
)

// Version is the two-part version pair carried by the binary format headers.
type Version struct {
	Major uint16
	Minor uint16
}

// String returns the version as "Major.Minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// versionRejected applies the version guard shared by the binary decoders:
// a file is rejected only when its major version is unknown AND its minor
// version is not 1. Known majors therefore accept every minor value, and an
// unknown major still passes when the minor is exactly 1. Files in the wild
// depend on the loose acceptance, so do not tighten the condition.
func versionRejected(supportedMajors map[uint16]bool, v Version) bool {
	return !supportedMajors[v.Major] && v.Minor != 1
}

// IsDegenerateFace reports whether a triangle references the same vertex
// index twice. Such faces have zero area; decoders drop them silently while
// reading, so no retained face is ever degenerate.
func IsDegenerateFace(i0, i1, i2 uint32) bool {
	return i0 == i1 || i1 == i2 || i2 == i0
}
