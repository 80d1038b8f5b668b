package mps7

// DecodeHeader reads and validates the 9-byte log preamble. The magic
// and version are checked before any record is trusted; accepted lists
// the versions this build (or its config) will decode.
func DecodeHeader(c *Cursor, accepted []uint8) (Header, error) {
	magic, err := c.Bytes(4)
	if err != nil {
		return Header{}, err
	}
	if string(magic) != Magic {
		e := &BadMagicError{}
		copy(e.Got[:], magic)
		return Header{}, e
	}

	version, err := c.Uint8()
	if err != nil {
		return Header{}, err
	}
	if !versionAccepted(version, accepted) {
		return Header{}, &UnsupportedVersionError{Version: version}
	}

	count, err := c.Uint32()
	if err != nil {
		return Header{}, err
	}

	return Header{Version: version, RecordCount: count}, nil
}

func versionAccepted(v uint8, accepted []uint8) bool {
	for _, a := range accepted {
		if v == a {
			return true
		}
	}
	return false
}

// DecodeRecord reads one record, tag first. The tag alone determines
// the record's width, so an unknown tag is fatal: there is no safe way
// to skip to the next record.
func DecodeRecord(c *Cursor) (Record, error) {
	tagOff := c.Offset()
	tag, err := c.Uint8()
	if err != nil {
		return Record{}, err
	}

	typ := RecordType(tag)
	switch typ {
	case TypeDebit, TypeCredit, TypeStartAutopay, TypeEndAutopay:
	default:
		return Record{}, &UnknownTypeError{Tag: tag, Offset: tagOff}
	}

	rec := Record{Type: typ}
	if rec.Timestamp, err = c.Uint32(); err != nil {
		return Record{}, err
	}
	if rec.UserID, err = c.Uint64(); err != nil {
		return Record{}, err
	}
	if typ.HasAmount() {
		if rec.Amount, err = c.Float64(); err != nil {
			return Record{}, err
		}
	}
	return rec, nil
}
