package mps7

import "fmt"

// TruncatedError reports a read past the end of the buffer. The cursor
// does not advance when it occurs, so Offset is exact.
type TruncatedError struct {
	Offset int // byte offset where the read started
	Want   int // bytes the read needed
	Have   int // bytes that were left
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input at offset %d: need %d bytes, have %d", e.Offset, e.Want, e.Have)
}

// BadMagicError reports a header whose magic bytes are not "MPS7".
type BadMagicError struct {
	Got [4]byte
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("bad magic %q: not an MPS7 log", e.Got)
}

// UnsupportedVersionError reports a header version outside the accepted set.
type UnsupportedVersionError struct {
	Version uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported MPS7 version %d", e.Version)
}

// UnknownTypeError reports a record tag outside the documented set.
// The stream cannot be resynchronized past it because the record's
// width is only known from its tag.
type UnknownTypeError struct {
	Tag    byte
	Offset int // offset of the tag byte
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown record type 0x%02x at offset %d", e.Tag, e.Offset)
}

// CountMismatchError is the warning attached to a partial result when
// the buffer ran out before the header's declared record count was
// reached.
type CountMismatchError struct {
	Declared uint32
	Actual   uint32
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("header declared %d records, decoded %d", e.Declared, e.Actual)
}
