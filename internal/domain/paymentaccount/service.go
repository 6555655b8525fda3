package paymentaccount

import "context"

type AccountService interface {
	Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	Get(ctx context.Context, id string) (AccountResponse, error)
	List(ctx context.Context) ([]AccountResponse, error)
	Update(ctx context.Context, req UpdateAccountRequest) (AccountResponse, error)
	Delete(ctx context.Context, id string) error
}
