// Package ledger keeps the per-account purchase history: an ordered sequence
// of human-readable line items per account ID. It is a summary, not a
// reconstructable transaction log; no price or product ID is retained.
package ledger

import "fmt"

// Entry is one account's history, used when flushing to disk.
type Entry struct {
	AccountID string
	Items     []string
}

// Ledger maps account IDs to their line items. Account keys keep
// first-purchase order so iteration and persistence are deterministic.
type Ledger struct {
	items map[string][]string
	order []string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{items: make(map[string][]string)}
}

// NewLedgerWith creates a ledger seeded with previously persisted entries,
// preserving their order.
func NewLedgerWith(entries []Entry) *Ledger {
	l := NewLedger()
	for _, e := range entries {
		l.items[e.AccountID] = append([]string(nil), e.Items...)
		l.order = append(l.order, e.AccountID)
	}
	return l
}

// RecordPurchase appends a "<name> x <quantity>" line item to the account's
// history, creating the sequence on first purchase.
func (l *Ledger) RecordPurchase(accountID, productName string, quantity int) {
	if _, ok := l.items[accountID]; !ok {
		l.order = append(l.order, accountID)
	}
	l.items[accountID] = append(l.items[accountID], fmt.Sprintf("%s x %d", productName, quantity))
}

// HistoryFor returns the recorded line items in append order, or an empty
// slice if the account has no history.
func (l *Ledger) HistoryFor(accountID string) []string {
	return append([]string(nil), l.items[accountID]...)
}

// Snapshot returns all entries in first-purchase order, for persistence.
func (l *Ledger) Snapshot() []Entry {
	entries := make([]Entry, 0, len(l.order))
	for _, id := range l.order {
		entries = append(entries, Entry{
			AccountID: id,
			Items:     append([]string(nil), l.items[id]...),
		})
	}
	return entries
}
