package ledger

import "github.com/txlog-dev/txlog/internal/mps7"

// Book accumulates running totals and per-user state over one pass of a
// record stream. It is built empty, mutated exactly once per record in
// stream order, and read-only after the stream ends.
type Book struct {
	TotalDebits  float64
	TotalCredits float64

	// RecordsDecoded counts records applied; DeclaredCount echoes the
	// header's declared total. They differ on truncated logs.
	RecordsDecoded uint32
	DeclaredCount  uint32

	balances map[uint64]float64
	autopay  map[uint64]struct{}
}

// NewBook returns an empty Book for declared records.
func NewBook(declared uint32) *Book {
	return &Book{
		DeclaredCount: declared,
		balances:      make(map[uint64]float64),
		autopay:       make(map[uint64]struct{}),
	}
}

// Apply folds one record into the book. Autopay toggles are idempotent:
// starting an already-active user or ending an inactive one is a no-op.
func (b *Book) Apply(r mps7.Record) {
	switch r.Type {
	case mps7.TypeDebit:
		b.TotalDebits += r.Amount
		b.balances[r.UserID] -= r.Amount
	case mps7.TypeCredit:
		b.TotalCredits += r.Amount
		b.balances[r.UserID] += r.Amount
	case mps7.TypeStartAutopay:
		b.autopay[r.UserID] = struct{}{}
	case mps7.TypeEndAutopay:
		delete(b.autopay, r.UserID)
	}
	b.RecordsDecoded++
}

// BalanceFor returns the user's net balance (credits minus debits),
// zero for a user the stream never mentioned.
func (b *Book) BalanceFor(userID uint64) float64 {
	return b.balances[userID]
}

// AutopayActive reports whether the user's autopay is currently on,
// false for an unseen user.
func (b *Book) AutopayActive(userID uint64) bool {
	_, ok := b.autopay[userID]
	return ok
}

// AutopayCount returns the number of users with autopay active.
func (b *Book) AutopayCount() int {
	return len(b.autopay)
}

// NetTotal returns total credits minus total debits.
func (b *Book) NetTotal() float64 {
	return b.TotalCredits - b.TotalDebits
}

// Users returns the number of distinct users with transaction activity.
func (b *Book) Users() int {
	return len(b.balances)
}
