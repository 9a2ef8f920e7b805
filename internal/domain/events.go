package domain

import "time"

// Event types
const (
	EventTypeStoreReady         = "store.ready"
	EventTypeUserLoggedIn       = "user.logged_in"
	EventTypeUserLoggedOut      = "user.logged_out"
	EventTypeAccountAdded       = "account.added"
	EventTypeAccountDeleted     = "account.deleted"
	EventTypeTransactionAdded   = "transaction.added"
	EventTypeTransactionDeleted = "transaction.deleted"
	EventTypeStockAdded         = "stock.added"
	EventTypeStockPriceUpdated  = "stock.price_updated"
	EventTypeStockRemoved       = "stock.removed"
)

// ChangeEvent is delivered to store observers after a successful mutation.
// Snapshot holds the post-mutation state.
type ChangeEvent struct {
	Type       string
	EntityIDs  []string
	OccurredAt time.Time
	Snapshot   Snapshot
}

// ChangeNotice is the compact wire form of a ChangeEvent published to
// external subscribers.
type ChangeNotice struct {
	Type         string   `json:"type"`
	EntityIDs    []string `json:"entity_ids,omitempty"`
	Accounts     int      `json:"accounts"`
	Transactions int      `json:"transactions"`
	Stocks       int      `json:"stocks"`
	LoggedIn     bool     `json:"logged_in"`
	OccurredAt   string   `json:"occurred_at"`
}

// Notice converts the event to its compact wire form.
func (e ChangeEvent) Notice() ChangeNotice {
	return ChangeNotice{
		Type:         e.Type,
		EntityIDs:    e.EntityIDs,
		Accounts:     len(e.Snapshot.Accounts),
		Transactions: len(e.Snapshot.Transactions),
		Stocks:       len(e.Snapshot.Stocks),
		LoggedIn:     e.Snapshot.User != nil,
		OccurredAt:   e.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
}
