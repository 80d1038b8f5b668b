package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/txlog-dev/txlog/internal/mps7"
)

// Header is the CSV header for record exports.
const Header = "type,timestamp,user_id,amount"

const (
	numFields    = 4
	colType      = 0
	colTimestamp = 1
	colUserID    = 2
	colAmount    = 3
)

// WriteCSV writes one row per record in decode order. The amount column
// is blank for autopay rows, which carry no amount on the wire.
func WriteCSV(w io.Writer, records []mps7.Record, withHeader bool) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if withHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row ([]string).
func MarshalRecord(rec mps7.Record) []string {
	row := make([]string, numFields)
	row[colType] = rec.Type.String()
	row[colTimestamp] = strconv.FormatUint(uint64(rec.Timestamp), 10)
	row[colUserID] = strconv.FormatUint(rec.UserID, 10)
	if rec.Type.HasAmount() {
		row[colAmount] = decimal.NewFromFloat(rec.Amount).String()
	}
	return row
}
