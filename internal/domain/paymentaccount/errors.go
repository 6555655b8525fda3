package paymentaccount

import "errors"

var (
	ErrAccountNotFound   = errors.New("payment account not found")
	ErrAccountReferenced = errors.New("payment account is referenced by existing payments")
	ErrAccountExists     = errors.New("payment account with this number already exists")
)
