package mps7

// Magic is the 4-byte constant that opens every MPS7 log.
const Magic = "MPS7"

// RecordType is the 1-byte tag that opens every record and determines
// its width: debits and credits carry an amount, autopay records do not.
type RecordType uint8

const (
	TypeDebit        RecordType = 0x00
	TypeCredit       RecordType = 0x01
	TypeStartAutopay RecordType = 0x02
	TypeEndAutopay   RecordType = 0x03
)

// String returns the human-readable label used in reports.
func (t RecordType) String() string {
	switch t {
	case TypeDebit:
		return "DEBIT"
	case TypeCredit:
		return "CREDIT"
	case TypeStartAutopay:
		return "START_AUTOPAY"
	case TypeEndAutopay:
		return "END_AUTOPAY"
	default:
		return "UNKNOWN"
	}
}

// HasAmount reports whether records of this type carry an amount field.
func (t RecordType) HasAmount() bool {
	return t == TypeDebit || t == TypeCredit
}

// Header is the fixed 9-byte preamble of a log: magic, version, and the
// declared number of records that follow. The declared count is a hint,
// not a guarantee; see Parse.
type Header struct {
	Version     uint8
	RecordCount uint32
}

// Record is one decoded log entry. Amount is zero for autopay records.
// Records are immutable once decoded.
type Record struct {
	Type      RecordType
	Timestamp uint32
	UserID    uint64
	Amount    float64
}
