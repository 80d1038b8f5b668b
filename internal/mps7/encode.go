package mps7

import (
	"encoding/binary"
	"math"
)

// AppendHeader appends the 9-byte wire encoding of h to dst and returns
// the extended slice.
func AppendHeader(dst []byte, h Header) []byte {
	dst = append(dst, Magic...)
	dst = append(dst, h.Version)
	return binary.BigEndian.AppendUint32(dst, h.RecordCount)
}

// AppendRecord appends the wire encoding of r to dst and returns the
// extended slice. Autopay records omit the amount field.
func AppendRecord(dst []byte, r Record) []byte {
	dst = append(dst, byte(r.Type))
	dst = binary.BigEndian.AppendUint32(dst, r.Timestamp)
	dst = binary.BigEndian.AppendUint64(dst, r.UserID)
	if r.Type.HasAmount() {
		dst = binary.BigEndian.AppendUint64(dst, math.Float64bits(r.Amount))
	}
	return dst
}

// Encode renders a complete log: header followed by records in order.
// Used for fixtures; RecordCount is taken from h, not len(records), so
// callers can deliberately produce count-mismatched logs.
func Encode(h Header, records []Record) []byte {
	buf := AppendHeader(nil, h)
	for _, r := range records {
		buf = AppendRecord(buf, r)
	}
	return buf
}
