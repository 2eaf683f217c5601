package interfaces

import (
	"github.com/mwielgus/finance-tracker/internal/finance/domain"
	financeErrors "github.com/mwielgus/finance-tracker/internal/finance/errors"
)

// MockTransactionService is a configurable stand-in for the transaction
// service used by handler tests.
type MockTransactionService struct {
	CreateFunc func(draft domain.TransactionDraft, userID int64) (*domain.Transaction, error)
	GetFunc    func(transactionID, userID int64) (*domain.Transaction, error)
	UpdateFunc func(transactionID, userID int64, draft domain.TransactionDraft) (*domain.Transaction, error)
	DeleteFunc func(transactionID, userID int64) error
	ListFunc   func(userID int64, filter domain.TransactionFilter, page, limit int) (*domain.TransactionPage, error)

	LastFilter domain.TransactionFilter
	LastPage   int
	LastLimit  int
}

func (m *MockTransactionService) CreateTransaction(draft domain.TransactionDraft, userID int64) (*domain.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(draft, userID)
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) GetTransactionByID(transactionID, userID int64) (*domain.Transaction, error) {
	if m.GetFunc != nil {
		return m.GetFunc(transactionID, userID)
	}
	return nil, nil
}

func (m *MockTransactionService) UpdateTransaction(transactionID, userID int64, draft domain.TransactionDraft) (*domain.Transaction, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(transactionID, userID, draft)
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) DeleteTransaction(transactionID, userID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(transactionID, userID)
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) GetUserTransactions(userID int64, filter domain.TransactionFilter, page, limit int) (*domain.TransactionPage, error) {
	m.LastFilter = filter
	m.LastPage = page
	m.LastLimit = limit
	if m.ListFunc != nil {
		return m.ListFunc(userID, filter, page, limit)
	}
	return domain.NewTransactionPage(nil, page, limit, 0), nil
}
