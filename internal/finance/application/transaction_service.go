package application

import (
	"time"

	"github.com/mwielgus/finance-tracker/internal/finance/domain"
	financeErrors "github.com/mwielgus/finance-tracker/internal/finance/errors"
)

// CategoryServiceInterface is the slice of the category manager the
// transaction manager needs for reference verification.
type CategoryServiceInterface interface {
	GetCategoryByIDAndUser(categoryID, userID int64) (*domain.Category, error)
}

// UserDirectory answers existence checks for resolved owner ids.
type UserDirectory interface {
	UserExists(userID int64) (bool, error)
}

// TransactionService is the ownership-scoped transaction manager. Every
// operation receives an already-resolved owner id and never a raw principal.
type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
	users           UserDirectory
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface, users UserDirectory) *TransactionService {
	return &TransactionService{repo: repo, categoryService: categoryService, users: users}
}

// verifyCategory re-checks that the draft's category belongs to the owner.
// The caller-supplied id is never trusted, even when the handler already
// looked it up.
func (s *TransactionService) verifyCategory(categoryID, userID int64) (*domain.Category, error) {
	category, err := s.categoryService.GetCategoryByIDAndUser(categoryID, userID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, financeErrors.ErrInvalidCategory
	}
	return category, nil
}

func (s *TransactionService) CreateTransaction(draft domain.TransactionDraft, userID int64) (*domain.Transaction, error) {
	draft.RoundToTwoDecimalPlaces()
	if err := draft.Validate(time.Now()); err != nil {
		return nil, err
	}

	category, err := s.verifyCategory(draft.CategoryID, userID)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.UserExists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, financeErrors.ErrOwnerNotFound
	}

	transaction := &domain.Transaction{
		UserID:       userID,
		CategoryID:   &category.ID,
		CategoryName: &category.Name,
		Amount:       draft.Amount,
		Type:         draft.Type,
		Description:  draft.Description,
		Date:         draft.Date,
	}
	if err := s.repo.Save(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetTransactionByID treats a transaction owned by somebody else exactly like
// a missing one, so callers cannot probe for foreign ids.
func (s *TransactionService) GetTransactionByID(transactionID, userID int64) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil || transaction.UserID != userID {
		return nil, nil
	}
	return transaction, nil
}

// UpdateTransaction keeps absence and foreign ownership distinct: a missing
// row is ErrTransactionNotFound while an existing row with another owner is
// ErrNotTransactionOwner.
func (s *TransactionService) UpdateTransaction(transactionID, userID int64, draft domain.TransactionDraft) (*domain.Transaction, error) {
	existing, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, financeErrors.ErrTransactionNotFound
	}
	if existing.UserID != userID {
		return nil, financeErrors.ErrNotTransactionOwner
	}

	draft.RoundToTwoDecimalPlaces()
	if err := draft.Validate(time.Now()); err != nil {
		return nil, err
	}

	category, err := s.verifyCategory(draft.CategoryID, userID)
	if err != nil {
		return nil, err
	}

	updated := domain.Transaction{
		ID:           transactionID,
		UserID:       userID,
		CategoryID:   &category.ID,
		CategoryName: &category.Name,
		Amount:       draft.Amount,
		Type:         draft.Type,
		Description:  draft.Description,
		Date:         draft.Date,
	}
	ok, err := s.repo.UpdateOwned(updated)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Row vanished between the fetch and the write.
		return nil, financeErrors.ErrTransactionNotFound
	}
	return &updated, nil
}

func (s *TransactionService) DeleteTransaction(transactionID, userID int64) error {
	existing, err := s.repo.FindByID(transactionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return financeErrors.ErrTransactionNotFound
	}
	if existing.UserID != userID {
		return financeErrors.ErrNotTransactionOwner
	}

	ok, err := s.repo.DeleteOwned(transactionID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

// GetUserTransactions dispatches to the most specific persisted-query shape
// for the supplied filter combination, most-filters-first. The recognized
// shapes are exactly: type+category+dates, type+category, type+dates,
// category+dates, type, category, dates, owner-only.
func (s *TransactionService) GetUserTransactions(userID int64, filter domain.TransactionFilter, page, limit int) (*domain.TransactionPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var (
		transactions []domain.Transaction
		total        int
		err          error
	)
	switch {
	case filter.Type != nil && filter.CategoryID != nil && filter.HasDateRange():
		transactions, total, err = s.repo.FindByUserTypeCategoryAndDateRange(userID, *filter.Type, *filter.CategoryID, filter.StartDate, filter.EndDate, limit, offset)
	case filter.Type != nil && filter.CategoryID != nil:
		transactions, total, err = s.repo.FindByUserTypeAndCategory(userID, *filter.Type, *filter.CategoryID, limit, offset)
	case filter.Type != nil && filter.HasDateRange():
		transactions, total, err = s.repo.FindByUserTypeAndDateRange(userID, *filter.Type, filter.StartDate, filter.EndDate, limit, offset)
	case filter.CategoryID != nil && filter.HasDateRange():
		transactions, total, err = s.repo.FindByUserCategoryAndDateRange(userID, *filter.CategoryID, filter.StartDate, filter.EndDate, limit, offset)
	case filter.Type != nil:
		transactions, total, err = s.repo.FindByUserAndType(userID, *filter.Type, limit, offset)
	case filter.CategoryID != nil:
		transactions, total, err = s.repo.FindByUserAndCategory(userID, *filter.CategoryID, limit, offset)
	case filter.HasDateRange():
		transactions, total, err = s.repo.FindByUserAndDateRange(userID, filter.StartDate, filter.EndDate, limit, offset)
	default:
		transactions, total, err = s.repo.FindByUser(userID, limit, offset)
	}
	if err != nil {
		return nil, err
	}

	return domain.NewTransactionPage(transactions, page, limit, total), nil
}
