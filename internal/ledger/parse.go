package ledger

import (
	"errors"
	"fmt"

	"github.com/txlog-dev/txlog/internal/mps7"
)

// Options controls one parse pass.
type Options struct {
	// AcceptedVersions lists the header versions to decode. Empty means
	// version 1 only.
	AcceptedVersions []uint8

	// KeepRecords retains the ordered record list on the Result. Only
	// record-level outputs (CSV, XLSX, PDF) need it; summary-only runs
	// leave it off to bound memory.
	KeepRecords bool
}

// Result is the outcome of one parse pass.
type Result struct {
	Header  mps7.Header
	Book    *Book
	Records []mps7.Record // nil unless Options.KeepRecords

	// Warnings holds non-fatal problems, currently at most one
	// *mps7.CountMismatchError when the buffer ran out early.
	Warnings []error
}

// DefaultVersions is the accepted-version set used when Options leaves
// it empty.
var DefaultVersions = []uint8{1}

// Parse decodes a complete MPS7 log from data, folding each record into
// a Book as it is decoded.
//
// A bad magic, an unsupported version, or an unknown record tag is
// fatal and returns a nil Result. Running out of bytes before the
// declared record count is reached is not: the declared count is a
// hint, so Parse returns the decodable prefix with a
// *mps7.CountMismatchError warning attached. The failing record, if
// any, is never partially applied.
func Parse(data []byte, opts Options) (*Result, error) {
	accepted := opts.AcceptedVersions
	if len(accepted) == 0 {
		accepted = DefaultVersions
	}

	c := mps7.NewCursor(data)
	header, err := mps7.DecodeHeader(c, accepted)
	if err != nil {
		var trunc *mps7.TruncatedError
		if errors.As(err, &trunc) {
			return nil, fmt.Errorf("decoding header: %w", err)
		}
		return nil, err
	}

	res := &Result{
		Header: header,
		Book:   NewBook(header.RecordCount),
	}

	for i := uint32(0); i < header.RecordCount; i++ {
		rec, err := mps7.DecodeRecord(c)
		if err != nil {
			var trunc *mps7.TruncatedError
			if errors.As(err, &trunc) {
				res.Warnings = append(res.Warnings, &mps7.CountMismatchError{
					Declared: header.RecordCount,
					Actual:   i,
				})
				return res, nil
			}
			return nil, err
		}
		res.Book.Apply(rec)
		if opts.KeepRecords {
			res.Records = append(res.Records, rec)
		}
	}

	return res, nil
}
