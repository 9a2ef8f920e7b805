package usecase

import "time"

// Persisted blob keys, one per collection.
const (
	KeyUser         = "wf_user"
	KeyAccounts     = "wf_accounts"
	KeyTransactions = "wf_transactions"
	KeyStocks       = "wf_stocks"
)

const (
	// DefaultLoadDelay is the simulated latency before the store becomes ready.
	DefaultLoadDelay = 500 * time.Millisecond

	// maxIDAttempts bounds regeneration when the generator returns an ID
	// already present in the target collection.
	maxIDAttempts = 8

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)

// Mutation names reported to StoreMetrics.
const (
	OpLogin             = "login"
	OpLogout            = "logout"
	OpAddAccount        = "add_account"
	OpDeleteAccount     = "delete_account"
	OpAddTransaction    = "add_transaction"
	OpDeleteTransaction = "delete_transaction"
	OpAddStock          = "add_stock"
	OpUpdateStockPrice  = "update_stock_price"
	OpRemoveStock       = "remove_stock"
)
