package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/paymentaccount"
	"github.com/hunarmand-punjab/erp-backend-go/internal/handler/http/response"
)

type PaymentAccountHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentAccountHandlerImpl struct {
	accountService paymentaccount.AccountService
}

func NewPaymentAccountHandler(accountService paymentaccount.AccountService) PaymentAccountHandler {
	return &PaymentAccountHandlerImpl{accountService: accountService}
}

// Create implements PaymentAccountHandler.
func (h *PaymentAccountHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req paymentaccount.CreateAccountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create payment account decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	acc, err := h.accountService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create payment account service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment account created successfully", acc)
}

// Get implements PaymentAccountHandler.
func (h *PaymentAccountHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	acc, err := h.accountService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, acc)
}

// List implements PaymentAccountHandler.
func (h *PaymentAccountHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.List(r.Context())
	if err != nil {
		slog.Error("List payment accounts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, accounts)
}

// Update implements PaymentAccountHandler.
func (h *PaymentAccountHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req paymentaccount.UpdateAccountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update payment account decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	acc, err := h.accountService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update payment account service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment account updated successfully", acc)
}

// Delete implements PaymentAccountHandler.
func (h *PaymentAccountHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.accountService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete payment account service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment account deleted successfully", nil)
}
