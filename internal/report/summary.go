package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/txlog-dev/txlog/internal/ledger"
)

// Summary renders the aggregate totals as human-readable text. When
// userID is non-nil the user's balance and autopay status are appended.
// Amounts display with two decimal places prefixed by currency.
func Summary(b *ledger.Book, userID *uint64, currency string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Records decoded: %d of %d declared\n", b.RecordsDecoded, b.DeclaredCount)
	fmt.Fprintf(&sb, "Total credits:   %s\n", money(b.TotalCredits, currency))
	fmt.Fprintf(&sb, "Total debits:    %s\n", money(b.TotalDebits, currency))
	fmt.Fprintf(&sb, "Net total:       %s\n", money(b.NetTotal(), currency))
	fmt.Fprintf(&sb, "Autopay active:  %d users\n", b.AutopayCount())

	if userID != nil {
		status := "off"
		if b.AutopayActive(*userID) {
			status = "on"
		}
		fmt.Fprintf(&sb, "\nUser %d\n", *userID)
		fmt.Fprintf(&sb, "  Balance: %s\n", money(b.BalanceFor(*userID), currency))
		fmt.Fprintf(&sb, "  Autopay: %s\n", status)
	}

	return sb.String()
}

// money formats v as a fixed two-decimal amount with the currency
// symbol between the sign and the digits: -$5.00, not $-5.00.
func money(v float64, currency string) string {
	d := decimal.NewFromFloat(v)
	if d.IsNegative() {
		return "-" + currency + d.Neg().StringFixed(2)
	}
	return currency + d.StringFixed(2)
}
