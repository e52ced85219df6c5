package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/interfaces/http/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func init() {
	// monetary values go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

type HandlerAccount struct {
	accountService domain.AccountService
	summaryService domain.SummaryService
	logger         *zap.Logger
}

func NewAccountHandler(accountService domain.AccountService, summaryService domain.SummaryService, logger *zap.Logger) *HandlerAccount {
	return &HandlerAccount{
		accountService: accountService,
		summaryService: summaryService,
		logger:         logger,
	}
}

// AccountRequest is the request body for create and update. Balance is
// optional and defaults to zero. Status is optional; when absent on
// update the stored status is left untouched.
type AccountRequest struct {
	AccountNumber string                `json:"account_number" validate:"required,max=50"`
	RoutingKey    string                `json:"routing_key" validate:"required,max=50"`
	OwnerName     string                `json:"owner_name" validate:"required,max=100"`
	OwnerDocument string                `json:"owner_document" validate:"required,max=50"`
	Currency      domain.Currency       `json:"currency" validate:"required,oneof=ARS USD EUR"`
	Balance       *decimal.Decimal      `json:"balance"`
	BranchCode    string                `json:"branch_code" validate:"required,max=20"`
	Status        *domain.AccountStatus `json:"status" validate:"omitempty,oneof=ACTIVE CLOSED"`
}

// AccountResponse is the wire representation of an account.
type AccountResponse struct {
	ID            uuid.UUID            `json:"id"`
	AccountNumber string               `json:"account_number"`
	RoutingKey    string               `json:"routing_key"`
	OwnerName     string               `json:"owner_name"`
	OwnerDocument string               `json:"owner_document"`
	Currency      domain.Currency      `json:"currency"`
	Balance       decimal.Decimal      `json:"balance"`
	Status        domain.AccountStatus `json:"status"`
	BranchCode    string               `json:"branch_code"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// NewAccountResponse creates a new AccountResponse from a domain Account
func NewAccountResponse(account *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:            account.ID,
		AccountNumber: account.AccountNumber,
		RoutingKey:    account.RoutingKey,
		OwnerName:     account.OwnerName,
		OwnerDocument: account.OwnerDocument,
		Currency:      account.Currency,
		Balance:       account.Balance,
		Status:        account.Status,
		BranchCode:    account.BranchCode,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}

func (req *AccountRequest) toDomain() *domain.Account {
	account := &domain.Account{
		AccountNumber: req.AccountNumber,
		RoutingKey:    req.RoutingKey,
		OwnerName:     req.OwnerName,
		OwnerDocument: req.OwnerDocument,
		Currency:      req.Currency,
		BranchCode:    req.BranchCode,
		Balance:       decimal.Zero,
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}
	if req.Status != nil {
		account.Status = *req.Status
	}
	return account
}

// CreateAccountHandler handles POST /api/v1/accounts
func (h *HandlerAccount) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	created, err := h.accountService.Create(r.Context(), req.toDomain())
	if err != nil {
		h.logger.Error("failed to create account", zap.Error(err))
		errors.RespondWithError(w, r.Context(), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", r.URL.Path+"/"+created.ID.String())
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(NewAccountResponse(created)); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetAccountHandler handles GET /api/v1/accounts/{id}
func (h *HandlerAccount) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	account, err := h.accountService.GetByID(r.Context(), id)
	if err != nil {
		errors.RespondWithError(w, r.Context(), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(NewAccountResponse(account)); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// ListAccountsHandler handles GET /api/v1/accounts
func (h *HandlerAccount) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list accounts", zap.Error(err))
		errors.RespondWithError(w, r.Context(), err)
		return
	}

	responses := make([]*AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, NewAccountResponse(account))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(responses); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetAccountSummaryHandler handles GET /api/v1/accounts/{id}/summary
func (h *HandlerAccount) GetAccountSummaryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	summary, err := h.summaryService.GetSummary(r.Context(), id)
	if err != nil {
		errors.RespondWithError(w, r.Context(), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// UpdateAccountHandler handles PUT /api/v1/accounts/{id}
func (h *HandlerAccount) UpdateAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	updated, err := h.accountService.Update(r.Context(), id, req.toDomain())
	if err != nil {
		h.logger.Error("failed to update account", zap.Error(err))
		errors.RespondWithError(w, r.Context(), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(NewAccountResponse(updated)); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// DeleteAccountHandler handles DELETE /api/v1/accounts/{id}. The account
// is closed, not removed.
func (h *HandlerAccount) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.accountService.Delete(r.Context(), id); err != nil {
		errors.RespondWithError(w, r.Context(), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HandlerAccount) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		errors.RespondWithError(w, r.Context(), domain.NewValidation("invalid account id: %v", err))
		return uuid.Nil, false
	}
	return id, true
}

func (h *HandlerAccount) decodeAndValidate(w http.ResponseWriter, r *http.Request) (*AccountRequest, bool) {
	var req AccountRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.RespondWithError(w, r.Context(), domain.NewValidation("malformed JSON request: %v", err))
		return nil, false
	}

	if err := validate.Struct(&req); err != nil {
		createErrorMessage(w, r, err)
		return nil, false
	}

	return &req, true
}
