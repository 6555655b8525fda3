package paymentaccount

import (
	"context"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/paymentaccount"
)

type AccountServiceImpl struct {
	accountRepo paymentaccount.AccountRepository
}

func NewAccountService(accountRepo paymentaccount.AccountRepository) paymentaccount.AccountService {
	return &AccountServiceImpl{accountRepo: accountRepo}
}

func (s *AccountServiceImpl) Create(ctx context.Context, req paymentaccount.CreateAccountRequest) (paymentaccount.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return paymentaccount.AccountResponse{}, err
	}

	acc := paymentaccount.Account{
		Title:         req.Title,
		Type:          paymentaccount.AccountType(req.Type),
		Provider:      req.Provider,
		AccountNumber: req.AccountNumber,
		HolderName:    req.HolderName,
		IsActive:      true,
	}

	created, err := s.accountRepo.Create(ctx, acc)
	if err != nil {
		return paymentaccount.AccountResponse{}, err
	}

	return paymentaccount.ToResponse(created), nil
}

func (s *AccountServiceImpl) Get(ctx context.Context, id string) (paymentaccount.AccountResponse, error) {
	acc, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return paymentaccount.AccountResponse{}, err
	}
	return paymentaccount.ToResponse(acc), nil
}

func (s *AccountServiceImpl) List(ctx context.Context) ([]paymentaccount.AccountResponse, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]paymentaccount.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		responses = append(responses, paymentaccount.ToResponse(acc))
	}
	return responses, nil
}

func (s *AccountServiceImpl) Update(ctx context.Context, req paymentaccount.UpdateAccountRequest) (paymentaccount.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return paymentaccount.AccountResponse{}, err
	}

	current, err := s.accountRepo.GetByID(ctx, req.ID)
	if err != nil {
		return paymentaccount.AccountResponse{}, err
	}

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.HolderName != nil {
		current.HolderName = *req.HolderName
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	updated, err := s.accountRepo.Update(ctx, current)
	if err != nil {
		return paymentaccount.AccountResponse{}, err
	}

	return paymentaccount.ToResponse(updated), nil
}

func (s *AccountServiceImpl) Delete(ctx context.Context, id string) error {
	return s.accountRepo.Delete(ctx, id)
}
