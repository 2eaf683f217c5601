package domain

import (
	"math"
	"strings"
	"time"

	"github.com/mwielgus/finance-tracker/internal/finance/errors"
)

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"

	maxDescriptionLength = 255
)

// Transaction is a single money movement owned by exactly one user.
// CategoryID is nil only when the referenced category has been deleted
// after the transaction was recorded.
type Transaction struct {
	ID           int64
	UserID       int64
	CategoryID   *int64
	CategoryName *string
	Amount       float64
	Type         string
	Description  string
	Date         time.Time
}

// TransactionDraft carries the caller-supplied fields of a create or update
// request. Ownership is never part of the draft; it is resolved upstream.
type TransactionDraft struct {
	Amount      float64
	Type        string
	Description string
	Date        time.Time
	CategoryID  int64
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

// Validate checks the draft field by field and collects every violation, so
// the caller can surface the full list instead of the first failure.
func (d *TransactionDraft) Validate(now time.Time) error {
	var validationErrors = &errors.ValidationErrors{}

	if d.Amount <= 0 {
		validationErrors.Add(errors.NewFieldValidationError("amount", "Amount must be positive"))
	}
	if !IsValidTransactionType(d.Type) {
		validationErrors.Add(errors.NewFieldValidationError("type", "Type must be INCOME or EXPENSE"))
	}
	if len(d.Description) > maxDescriptionLength {
		validationErrors.Add(errors.NewFieldValidationError("description", "Description must be at most 255 characters"))
	}
	if d.Date.IsZero() {
		validationErrors.Add(errors.NewFieldValidationError("date", "Date is required"))
	} else if d.Date.After(now) {
		validationErrors.Add(errors.NewFieldValidationError("date", "Date cannot be in the future"))
	}
	if d.CategoryID <= 0 {
		validationErrors.Add(errors.NewFieldValidationError("categoryId", "Category ID is required"))
	}

	if len(validationErrors.Errors) > 0 {
		return validationErrors
	}
	return nil
}

// RoundToTwoDecimalPlaces normalizes the amount before persisting it.
func (d *TransactionDraft) RoundToTwoDecimalPlaces() {
	d.Amount = math.Round(d.Amount*100) / 100
}

// TransactionFilter is the optional predicate set of a listing request.
// A nil field means the predicate is absent.
type TransactionFilter struct {
	Type       *string
	CategoryID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

// HasDateRange reports whether at least one date bound was supplied.
// A single bound filters on that bound alone.
func (f TransactionFilter) HasDateRange() bool {
	return f.StartDate != nil || f.EndDate != nil
}

// TransactionPage is one page of a filtered listing plus pagination metadata.
type TransactionPage struct {
	Items         []Transaction
	Page          int
	Limit         int
	TotalElements int
	TotalPages    int
}

func NewTransactionPage(items []Transaction, page, limit, total int) *TransactionPage {
	if items == nil {
		items = []Transaction{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &TransactionPage{
		Items:         items,
		Page:          page,
		Limit:         limit,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// TransactionRepository is the persistence gateway for transactions. The
// filtered finders map one-to-one to the persisted-query shapes the manager
// dispatches between; every finder is owner-scoped and paginated.
type TransactionRepository interface {
	Save(transaction *Transaction) error
	FindByID(transactionID int64) (*Transaction, error)
	// UpdateOwned and DeleteOwned re-assert ownership inside the statement
	// itself; false means no row matched both id and owner.
	UpdateOwned(transaction Transaction) (bool, error)
	DeleteOwned(transactionID, userID int64) (bool, error)

	FindByUser(userID int64, limit, offset int) ([]Transaction, int, error)
	FindByUserAndType(userID int64, transactionType string, limit, offset int) ([]Transaction, int, error)
	FindByUserAndCategory(userID, categoryID int64, limit, offset int) ([]Transaction, int, error)
	FindByUserAndDateRange(userID int64, startDate, endDate *time.Time, limit, offset int) ([]Transaction, int, error)
	FindByUserTypeAndCategory(userID int64, transactionType string, categoryID int64, limit, offset int) ([]Transaction, int, error)
	FindByUserTypeAndDateRange(userID int64, transactionType string, startDate, endDate *time.Time, limit, offset int) ([]Transaction, int, error)
	FindByUserCategoryAndDateRange(userID, categoryID int64, startDate, endDate *time.Time, limit, offset int) ([]Transaction, int, error)
	FindByUserTypeCategoryAndDateRange(userID int64, transactionType string, categoryID int64, startDate, endDate *time.Time, limit, offset int) ([]Transaction, int, error)
}

// NormalizeType uppercases a caller-supplied type so query parameters accept
// income/Income/INCOME alike.
func NormalizeType(transactionType string) string {
	return strings.ToUpper(strings.TrimSpace(transactionType))
}
