package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every input validation error.
var ErrValidation = errors.New("validation failed")

var (
	// Login errors
	ErrEmptyName  = fmt.Errorf("%w: name is required", ErrValidation)
	ErrEmptyEmail = fmt.Errorf("%w: email is required", ErrValidation)

	// Account errors
	ErrInvalidAccountName = fmt.Errorf("%w: invalid account name", ErrValidation)
	ErrInvalidCurrency    = fmt.Errorf("%w: invalid currency code", ErrValidation)

	// Transaction errors
	ErrInvalidAmount          = fmt.Errorf("%w: amount must not be negative", ErrValidation)
	ErrInvalidTransactionType = fmt.Errorf("%w: transaction type must be income or expense", ErrValidation)
	ErrInvalidDate            = fmt.Errorf("%w: invalid calendar date", ErrValidation)

	// Stock errors
	ErrEmptySymbol   = fmt.Errorf("%w: symbol is required", ErrValidation)
	ErrInvalidShares = fmt.Errorf("%w: shares must not be negative", ErrValidation)
	ErrInvalidPrice  = fmt.Errorf("%w: price must not be negative", ErrValidation)
)

var (
	// ErrStoreNotReady is returned by collection mutations issued before the
	// store finished loading.
	ErrStoreNotReady = errors.New("finance store is still loading")

	// ErrBlobNotFound is returned by storage backends for an absent key.
	ErrBlobNotFound = errors.New("stored blob not found")
)
