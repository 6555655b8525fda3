package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/expense"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/paymentaccount"
)

type ExpenseServiceImpl struct {
	expenseRepo expense.ExpenseRepository
	accountRepo paymentaccount.AccountRepository
}

func NewExpenseService(
	expenseRepo expense.ExpenseRepository,
	accountRepo paymentaccount.AccountRepository,
) expense.ExpenseService {
	return &ExpenseServiceImpl{
		expenseRepo: expenseRepo,
		accountRepo: accountRepo,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing")
	}

	return userID, nil
}

// periodRange resolves a reporting window to a half-open [from, to) interval
// anchored at date.
func periodRange(period, date string) (from, to time.Time, err error) {
	anchor, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, expense.ErrInvalidPeriod
	}

	switch period {
	case "daily":
		from = anchor
		to = anchor.AddDate(0, 0, 1)
	case "monthly":
		from = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0)
	case "yearly":
		from = time.Date(anchor.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(1, 0, 0)
	default:
		return time.Time{}, time.Time{}, expense.ErrInvalidPeriod
	}

	return from, to, nil
}

func (s *ExpenseServiceImpl) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	if req.PaymentAccountID != nil && *req.PaymentAccountID != "" {
		if _, err := s.accountRepo.GetByID(ctx, *req.PaymentAccountID); err != nil {
			return expense.ExpenseResponse{}, err
		}
	}

	amount, _ := decimal.NewFromString(req.Amount)
	expenseDate, _ := time.Parse("2006-01-02", req.ExpenseDate)

	exp := expense.Expense{
		Title:            req.Title,
		Category:         expense.Category(req.Category),
		Amount:           amount,
		ExpenseDate:      expenseDate,
		PaymentAccountID: req.PaymentAccountID,
		Notes:            req.Notes,
		CreatedBy:        userID,
	}

	created, err := s.expenseRepo.Create(ctx, exp)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return toResponse(created), nil
}

func (s *ExpenseServiceImpl) Update(ctx context.Context, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	current, err := s.expenseRepo.GetByID(ctx, req.ID)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.Category != nil {
		current.Category = expense.Category(*req.Category)
	}
	if req.Amount != nil {
		amount, parseErr := decimal.NewFromString(*req.Amount)
		if parseErr == nil {
			current.Amount = amount
		}
	}
	if req.ExpenseDate != nil {
		expenseDate, parseErr := time.Parse("2006-01-02", *req.ExpenseDate)
		if parseErr == nil {
			current.ExpenseDate = expenseDate
		}
	}
	if req.PaymentAccountID != nil {
		if *req.PaymentAccountID == "" {
			current.PaymentAccountID = nil
		} else {
			if _, err := s.accountRepo.GetByID(ctx, *req.PaymentAccountID); err != nil {
				return expense.ExpenseResponse{}, err
			}
			current.PaymentAccountID = req.PaymentAccountID
		}
	}
	if req.Notes != nil {
		current.Notes = req.Notes
	}

	updated, err := s.expenseRepo.Update(ctx, current)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return toResponse(updated), nil
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) error {
	return s.expenseRepo.Delete(ctx, id)
}

func (s *ExpenseServiceImpl) List(ctx context.Context, period, date string) ([]expense.ExpenseResponse, error) {
	from, to, err := periodRange(period, date)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, exp := range expenses {
		responses = append(responses, toResponse(exp))
	}
	return responses, nil
}

func (s *ExpenseServiceImpl) Totals(ctx context.Context, period, date string) (expense.TotalsResponse, error) {
	from, to, err := periodRange(period, date)
	if err != nil {
		return expense.TotalsResponse{}, err
	}

	totals, err := s.expenseRepo.CategoryTotals(ctx, from, to)
	if err != nil {
		return expense.TotalsResponse{}, err
	}

	resp := expense.TotalsResponse{
		Period:     period,
		From:       from.Format("2006-01-02"),
		To:         to.AddDate(0, 0, -1).Format("2006-01-02"),
		ByCategory: make(map[string]string, len(expense.Categories)),
	}

	grand := decimal.Zero
	for _, category := range expense.Categories {
		total, ok := totals[category]
		if !ok {
			resp.ByCategory[string(category)] = "0"
			continue
		}
		resp.ByCategory[string(category)] = total
		d, parseErr := decimal.NewFromString(total)
		if parseErr != nil {
			return expense.TotalsResponse{}, fmt.Errorf("failed to parse category total: %w", parseErr)
		}
		grand = grand.Add(d)
	}
	resp.Total = grand.String()

	return resp, nil
}

func (s *ExpenseServiceImpl) Ledger(ctx context.Context, period, date string) (expense.LedgerResponse, error) {
	from, to, err := periodRange(period, date)
	if err != nil {
		return expense.LedgerResponse{}, err
	}

	entries, err := s.expenseRepo.Ledger(ctx, from, to)
	if err != nil {
		return expense.LedgerResponse{}, err
	}

	resp := expense.LedgerResponse{Entries: make([]expense.LedgerEntryResponse, 0, len(entries))}
	grand := decimal.Zero

	for _, entry := range entries {
		resp.Entries = append(resp.Entries, expense.LedgerEntryResponse{
			ID:               entry.ID,
			Source:           string(entry.Source),
			Title:            entry.Title,
			Category:         entry.Category,
			Amount:           entry.Amount.String(),
			Date:             entry.Date.Format("2006-01-02"),
			PaymentAccountID: entry.PaymentAccountID,
		})
		grand = grand.Add(entry.Amount)
	}
	resp.Total = grand.String()

	return resp, nil
}

func toResponse(exp expense.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:               exp.ID,
		Title:            exp.Title,
		Category:         string(exp.Category),
		Amount:           exp.Amount.String(),
		ExpenseDate:      exp.ExpenseDate.Format("2006-01-02"),
		PaymentAccountID: exp.PaymentAccountID,
		Notes:            exp.Notes,
		CreatedAt:        exp.CreatedAt.Format(time.RFC3339),
	}
}
