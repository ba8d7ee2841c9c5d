package kasir

import (
	"time"

	"github.com/google/uuid"
)

// Item is one line of a committed transaction: a snapshot of the cart line
// at sale time, decoupled from the live catalog.
type Item struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"qty"`
	UnitPrice Money  `json:"price"`
}

// Subtotal returns quantity times unit price.
func (it Item) Subtotal() Money { return it.UnitPrice.MulInt(it.Quantity) }

// Transaction is a completed sale. It is immutable once created except for
// whole-record deletion; the total equals the sum of its item subtotals at
// creation and is never recomputed, even if product prices change later.
type Transaction struct {
	Ref       string `json:"ref,omitempty"` // receipt reference
	Timestamp int64  `json:"ts"`            // epoch millis
	Items     []Item `json:"items"`
	Total     Money  `json:"total"`
}

// Time returns the sale instant.
func (t Transaction) Time() time.Time { return time.UnixMilli(t.Timestamp) }

// Ledger is the append-only record of committed transactions, persisted
// under TransactionsKey. The persisted order is chronological, newest last;
// entries are addressed by position in that order. Deleting entry i shifts
// later indices down, so indices must be re-derived from a fresh read, not
// cached across mutations.
type Ledger struct {
	store Store
	now   func() time.Time
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// Transactions returns the persisted transactions in order, newest last.
func (l *Ledger) Transactions() ([]Transaction, error) {
	var txs []Transaction
	if _, err := l.store.Read(TransactionsKey, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// Commit records a sale from the given cart lines and returns the new
// transaction. An empty cart is rejected with ErrEmptyCart before any
// state changes.
//
// If appending to the store fails, the built transaction is returned
// together with the *PersistenceError: the sale happened in memory but may
// not be durably recorded, and the caller must warn the user instead of
// discarding the receipt.
func (l *Ledger) Commit(lines []Line) (Transaction, error) {
	if len(lines) == 0 {
		return Transaction{}, ErrEmptyCart
	}
	items := make([]Item, 0, len(lines))
	total := M(0)
	for _, line := range lines {
		items = append(items, Item{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
		total = total.Add(line.Subtotal())
	}
	tx := Transaction{
		Ref:       uuid.NewString(),
		Timestamp: l.now().UnixMilli(),
		Items:     items,
		Total:     total,
	}
	txs, err := l.Transactions()
	if err != nil {
		return Transaction{}, err
	}
	txs = append(txs, tx)
	if err := l.store.Write(TransactionsKey, txs); err != nil {
		return tx, err
	}
	return tx, nil
}

// DeleteAt removes the transaction at the given position in the persisted
// order and reports whether the index was in range. Out-of-range leaves
// the ledger unchanged.
func (l *Ledger) DeleteAt(index int) (bool, error) {
	txs, err := l.Transactions()
	if err != nil {
		return false, err
	}
	if index < 0 || index >= len(txs) {
		return false, nil
	}
	txs = append(txs[:index], txs[index+1:]...)
	if err := l.store.Write(TransactionsKey, txs); err != nil {
		return false, err
	}
	return true, nil
}
