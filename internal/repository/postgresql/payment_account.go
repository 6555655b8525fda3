package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/paymentaccount"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/database"
)

type paymentAccountRepository struct {
	db *database.DB
}

func NewPaymentAccountRepository(db *database.DB) paymentaccount.AccountRepository {
	return &paymentAccountRepository{db: db}
}

func scanAccount(row pgx.Row) (paymentaccount.Account, error) {
	var acc paymentaccount.Account
	err := row.Scan(
		&acc.ID, &acc.Title, &acc.Type, &acc.Provider, &acc.AccountNumber,
		&acc.HolderName, &acc.IsActive, &acc.CreatedAt, &acc.UpdatedAt,
	)
	return acc, err
}

func (r *paymentAccountRepository) Create(ctx context.Context, acc paymentaccount.Account) (paymentaccount.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payment_accounts (title, type, provider, account_number, holder_name, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, type, provider, account_number, holder_name, is_active, created_at, updated_at
	`

	created, err := scanAccount(q.QueryRow(ctx, query,
		acc.Title, acc.Type, acc.Provider, acc.AccountNumber, acc.HolderName, acc.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payment_accounts_number") {
			return paymentaccount.Account{}, paymentaccount.ErrAccountExists
		}
		return paymentaccount.Account{}, fmt.Errorf("failed to create payment account: %w", err)
	}

	return created, nil
}

func (r *paymentAccountRepository) GetByID(ctx context.Context, id string) (paymentaccount.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, type, provider, account_number, holder_name, is_active, created_at, updated_at
		FROM payment_accounts
		WHERE id = $1
	`

	acc, err := scanAccount(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return paymentaccount.Account{}, paymentaccount.ErrAccountNotFound
		}
		return paymentaccount.Account{}, fmt.Errorf("failed to get payment account: %w", err)
	}

	return acc, nil
}

func (r *paymentAccountRepository) List(ctx context.Context) ([]paymentaccount.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, type, provider, account_number, holder_name, is_active, created_at, updated_at
		FROM payment_accounts
		ORDER BY title
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment accounts: %w", err)
	}
	defer rows.Close()

	var accounts []paymentaccount.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, nil
}

func (r *paymentAccountRepository) Update(ctx context.Context, acc paymentaccount.Account) (paymentaccount.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payment_accounts
		SET title = $2, holder_name = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, type, provider, account_number, holder_name, is_active, created_at, updated_at
	`

	updated, err := scanAccount(q.QueryRow(ctx, query, acc.ID, acc.Title, acc.HolderName, acc.IsActive))
	if err != nil {
		if err == pgx.ErrNoRows {
			return paymentaccount.Account{}, paymentaccount.ErrAccountNotFound
		}
		return paymentaccount.Account{}, fmt.Errorf("failed to update payment account: %w", err)
	}

	return updated, nil
}

func (r *paymentAccountRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payment_accounts WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return paymentaccount.ErrAccountNotFound
		}
		// Salaries and expenses reference accounts with ON DELETE RESTRICT.
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return paymentaccount.ErrAccountReferenced
		}
		return fmt.Errorf("failed to delete payment account: %w", err)
	}

	return nil
}
