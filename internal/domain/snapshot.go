package domain

import "slices"

// Snapshot is a point-in-time copy of the whole store state.
type Snapshot struct {
	User         *User
	Accounts     []Account
	Transactions []Transaction
	Stocks       []StockPosition
	Loading      bool
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Accounts:     slices.Clone(s.Accounts),
		Transactions: slices.Clone(s.Transactions),
		Stocks:       slices.Clone(s.Stocks),
		Loading:      s.Loading,
	}

	if s.User != nil {
		u := *s.User
		out.User = &u
	}

	return out
}

// AccountByID returns the account with the given id.
func (s Snapshot) AccountByID(id string) (Account, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}

	return Account{}, false
}
