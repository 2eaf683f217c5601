package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/mwielgus/finance-tracker/internal/finance/domain"
	financeErrors "github.com/mwielgus/finance-tracker/internal/finance/errors"
)

const (
	dateLayout   = "2006-01-02"
	defaultLimit = 20
)

type TransactionServiceInterface interface {
	CreateTransaction(draft domain.TransactionDraft, userID int64) (*domain.Transaction, error)
	GetTransactionByID(transactionID, userID int64) (*domain.Transaction, error)
	UpdateTransaction(transactionID, userID int64, draft domain.TransactionDraft) (*domain.Transaction, error)
	DeleteTransaction(transactionID, userID int64) error
	GetUserTransactions(userID int64, filter domain.TransactionFilter, page, limit int) (*domain.TransactionPage, error)
}

type transactionRequest struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	CategoryID  int64   `json:"categoryId"`
}

type transactionResponse struct {
	ID           int64   `json:"id"`
	Amount       float64 `json:"amount"`
	Type         string  `json:"type"`
	Description  string  `json:"description"`
	Date         string  `json:"date"`
	CategoryID   *int64  `json:"categoryId"`
	CategoryName *string `json:"categoryName"`
}

func newTransactionResponse(transaction *domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:           transaction.ID,
		Amount:       transaction.Amount,
		Type:         transaction.Type,
		Description:  transaction.Description,
		Date:         transaction.Date.Format(dateLayout),
		CategoryID:   transaction.CategoryID,
		CategoryName: transaction.CategoryName,
	}
}

func newTransactionResponseList(transactions []domain.Transaction) []transactionResponse {
	responses := make([]transactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = newTransactionResponse(&transactions[i])
	}
	return responses
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *TransactionHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
	}
	if respondJSON == nil {
		log.Fatal("RespondJSON function must not be nil")
	}
	if respondError == nil {
		log.Fatal("RespondError function must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func requestUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value("userID").(int64)
	return userID, ok
}

func parseTransactionID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// toDraft converts the request body into a draft, parsing the calendar date.
// A malformed date surfaces as a field validation message, not a decode error.
func (req *transactionRequest) toDraft() (domain.TransactionDraft, error) {
	draft := domain.TransactionDraft{
		Amount:      req.Amount,
		Type:        domain.NormalizeType(req.Type),
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return draft, err
		}
		draft.Date = date
	}
	return draft, nil
}

func (h *TransactionHandler) respondServiceError(w http.ResponseWriter, err error) {
	var validationErrors *financeErrors.ValidationErrors
	if errors.As(err, &validationErrors) {
		h.respondError(w, http.StatusBadRequest, "Validation failed", validationErrors.Messages())
		return
	}
	if financeErrors.IsValidationError(err) {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	switch {
	case errors.Is(err, financeErrors.ErrInvalidCategory):
		h.respondError(w, http.StatusNotFound, financeErrors.ErrInvalidCategory.Error())
	case errors.Is(err, financeErrors.ErrOwnerNotFound):
		h.respondError(w, http.StatusNotFound, financeErrors.ErrOwnerNotFound.Error())
	case errors.Is(err, financeErrors.ErrTransactionNotFound):
		h.respondError(w, http.StatusNotFound, financeErrors.ErrTransactionNotFound.Error())
	case errors.Is(err, financeErrors.ErrNotTransactionOwner):
		h.respondError(w, http.StatusForbidden, financeErrors.ErrNotTransactionOwner.Error())
	default:
		log.Printf("transaction handler error: %v", err)
		h.respondError(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := req.toDraft()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation failed", []string{"Date must be in format YYYY-MM-DD"})
		return
	}

	transaction, err := h.service.CreateTransaction(draft, userID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    newTransactionResponse(transaction),
	})
}

func (h *TransactionHandler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactionID, err := parseTransactionID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	transaction, err := h.service.GetTransactionByID(transactionID, userID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	if transaction == nil {
		h.respondError(w, http.StatusNotFound, financeErrors.ErrTransactionNotFound.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   newTransactionResponse(transaction),
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactionID, err := parseTransactionID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := req.toDraft()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation failed", []string{"Date must be in format YYYY-MM-DD"})
		return
	}

	transaction, err := h.service.UpdateTransaction(transactionID, userID, draft)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   newTransactionResponse(transaction),
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactionID, err := parseTransactionID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	if err := h.service.DeleteTransaction(transactionID, userID); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetUserTransactions lists the caller's transactions filtered by any
// combination of type, category and date range, paginated.
func (h *TransactionHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var filter domain.TransactionFilter

	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		transactionType := domain.NormalizeType(typeStr)
		if !domain.IsValidTransactionType(transactionType) {
			h.respondError(w, http.StatusBadRequest, "Invalid transaction type")
			return
		}
		filter.Type = &transactionType
	}

	if categoryStr := r.URL.Query().Get("categoryId"); categoryStr != "" {
		categoryID, err := strconv.ParseInt(categoryStr, 10, 64)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid category ID")
			return
		}
		filter.CategoryID = &categoryID
	}

	if startDateStr := r.URL.Query().Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(dateLayout, startDateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid start date format")
			return
		}
		filter.StartDate = &startDate
	}

	if endDateStr := r.URL.Query().Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(dateLayout, endDateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid end date format")
			return
		}
		filter.EndDate = &endDate
	}

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid page value")
			return
		}
		page = parsed
	}

	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid limit value")
			return
		}
		limit = parsed
	}

	transactionPage, err := h.service.GetUserTransactions(userID, filter, page, limit)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    newTransactionResponseList(transactionPage.Items),
		"page": map[string]int{
			"page":           transactionPage.Page,
			"limit":          transactionPage.Limit,
			"total_elements": transactionPage.TotalElements,
			"total_pages":    transactionPage.TotalPages,
		},
	})
}
