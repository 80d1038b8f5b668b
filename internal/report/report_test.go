package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/txlog-dev/txlog/internal/ledger"
	"github.com/txlog-dev/txlog/internal/mps7"
)

func sampleBook(t *testing.T) (*ledger.Book, []mps7.Record) {
	t.Helper()
	records := []mps7.Record{
		{Type: mps7.TypeCredit, Timestamp: 1, UserID: 100, Amount: 50.0},
		{Type: mps7.TypeDebit, Timestamp: 2, UserID: 100, Amount: 20.0},
		{Type: mps7.TypeStartAutopay, Timestamp: 3, UserID: 100},
		{Type: mps7.TypeEndAutopay, Timestamp: 4, UserID: 100},
	}
	b := ledger.NewBook(4)
	for _, r := range records {
		b.Apply(r)
	}
	return b, records
}

func TestSummary(t *testing.T) {
	b, _ := sampleBook(t)

	out := Summary(b, nil, "$")
	assert.Contains(t, out, "Records decoded: 4 of 4 declared")
	assert.Contains(t, out, "Total credits:   $50.00")
	assert.Contains(t, out, "Total debits:    $20.00")
	assert.Contains(t, out, "Net total:       $30.00")
	assert.Contains(t, out, "Autopay active:  0 users")
	assert.NotContains(t, out, "User", "no user section without a filter")
}

func TestSummaryWithUser(t *testing.T) {
	b, _ := sampleBook(t)

	user := uint64(100)
	out := Summary(b, &user, "$")
	assert.Contains(t, out, "User 100")
	assert.Contains(t, out, "Balance: $30.00")
	assert.Contains(t, out, "Autopay: off")

	unseen := uint64(999)
	out = Summary(b, &unseen, "$")
	assert.Contains(t, out, "Balance: $0.00")
}

func TestSummaryNegativeAmount(t *testing.T) {
	b := ledger.NewBook(1)
	b.Apply(mps7.Record{Type: mps7.TypeDebit, UserID: 1, Amount: 12.5})

	out := Summary(b, nil, "$")
	assert.Contains(t, out, "Net total:       -$12.50", "sign goes before the symbol")
}

func TestWriteCSV(t *testing.T) {
	_, records := sampleBook(t)

	var buf bytes.Buffer
	err := WriteCSV(&buf, records, true)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "CREDIT,1,100,50", lines[1])
	assert.Equal(t, "DEBIT,2,100,20", lines[2])
	assert.Equal(t, "START_AUTOPAY,3,100,", lines[3], "autopay rows leave the amount blank")
	assert.Equal(t, "END_AUTOPAY,4,100,", lines[4])
}

func TestWriteCSVNoHeader(t *testing.T) {
	_, records := sampleBook(t)

	var buf bytes.Buffer
	err := WriteCSV(&buf, records[:1], false)
	require.NoError(t, err)
	assert.Equal(t, "CREDIT,1,100,50\n", buf.String())
}

func TestWriteCSVFractionalAmount(t *testing.T) {
	rec := mps7.Record{Type: mps7.TypeDebit, Timestamp: 1393108945, UserID: 4136353673894269217, Amount: 604.274335557087}

	row := MarshalRecord(rec)
	assert.Equal(t, "DEBIT", row[colType])
	assert.Equal(t, "1393108945", row[colTimestamp])
	assert.Equal(t, "4136353673894269217", row[colUserID])
	assert.Equal(t, "604.274335557087", row[colAmount])
}

func TestBuildXLSX(t *testing.T) {
	b, records := sampleBook(t)

	data, err := BuildXLSX(b, records)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("summary", "B5")
	require.NoError(t, err)
	assert.Equal(t, "50", got, "total credits cell")

	got, err = f.GetCellValue("records", "A2")
	require.NoError(t, err)
	assert.Equal(t, "CREDIT", got)

	got, err = f.GetCellValue("records", "D4")
	require.NoError(t, err)
	assert.Empty(t, got, "autopay rows have no amount")
}

func TestBuildPDF(t *testing.T) {
	b, records := sampleBook(t)

	data, err := BuildPDF(b, records)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output is a PDF document")
}
