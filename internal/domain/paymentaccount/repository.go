package paymentaccount

import "context"

// AccountRepository defines data access methods for payment accounts.
type AccountRepository interface {
	// Create inserts an account. A duplicate account number fails with
	// ErrAccountExists.
	Create(ctx context.Context, acc Account) (Account, error)

	GetByID(ctx context.Context, id string) (Account, error)

	List(ctx context.Context) ([]Account, error)

	Update(ctx context.Context, acc Account) (Account, error)

	// Delete removes an account. It fails with ErrAccountReferenced while
	// any salary payment or expense still points at it.
	Delete(ctx context.Context, id string) error
}
