package infrastructure

import (
	"time"

	"github.com/mwielgus/finance-tracker/internal/finance/domain"
)

// MockTransactionRepository is an in-memory stand-in for the SQL repository.
// LastFinder records which persisted-query shape the manager dispatched to.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	LastFinder   string
	nextID       int64
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	m.nextID++
	transaction.ID = m.nextID
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindByID(transactionID int64) (*domain.Transaction, error) {
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID {
			found := transaction
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) UpdateOwned(transaction domain.Transaction) (bool, error) {
	for i, existing := range m.Transactions {
		if existing.ID == transaction.ID && existing.UserID == transaction.UserID {
			m.Transactions[i] = transaction
			return true, nil
		}
	}
	return false, nil
}

func (m *MockTransactionRepository) DeleteOwned(transactionID, userID int64) (bool, error) {
	for i, existing := range m.Transactions {
		if existing.ID == transactionID && existing.UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func matchesDateRange(date time.Time, startDate, endDate *time.Time) bool {
	if startDate != nil && date.Before(*startDate) {
		return false
	}
	if endDate != nil && date.After(*endDate) {
		return false
	}
	return true
}

func (m *MockTransactionRepository) findFiltered(userID int64, match func(domain.Transaction) bool, limit, offset int) ([]domain.Transaction, int, error) {
	var all []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && match(transaction) {
			all = append(all, transaction)
		}
	}

	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *MockTransactionRepository) FindByUser(userID int64, limit, offset int) ([]domain.Transaction, int, error) {
	m.LastFinder = "FindByUser"
	return m.findFiltered(userID, func(domain.Transaction) bool { return true }, limit, offset)
}

func (m *MockTransactionRepository) FindByUserAndType(userID int64, transactionType string, limit, offset int) ([]domain.Transaction, int, error) {
	m.LastFinder = "FindByUserAndType"
	return m.findFiltered(userID, func(t domain.Transaction) bool {
		return t.Type == transactionType
	}, limit, offset)
}

func (m *MockTransactionRepository) FindByUserAndCategory(userID, categoryID int64, limit, offset int) ([]domain.Transaction, int, error) {
	m.LastFinder = "FindByUserAndCategory"
	return m.findFiltered(userID, func(t domain.Transaction) bool {
		return t.CategoryID != nil && *t.CategoryID == categoryID
	}, limit, offset)
}

func (m *MockTransactionRepository) FindByUserAndDateRange(userID int64, startDate, endDate *time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	m.LastFinder = "FindByUserAndDateRange"
	return m.findFiltered(userID, func(t domain.Transaction) bool {
		return matchesDateRange(t.Date, startDate, endDate)
	}, limit, offset)
}

func (m *MockTransactionRepository) FindByUserTypeAndCategory(userID int64, transactionType string, categoryID int64, limit, offset int) ([]domain.Transaction, int, error) {
	m.LastFinder = "FindByUserTypeAndCategory"
	return m.findFiltered(userID, func(t domain.Transaction) bool {
		return t.Type == transactionType && t.CategoryID != nil && *t.CategoryID == categoryID
	}, limit, offset)
}

func (m *MockTransactionRepository) FindByUserTypeAndDateRange(userID int64, transactionType string, startDate, endDate *time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	m.LastFinder = "FindByUserTypeAndDateRange"
	return m.findFiltered(userID, func(t domain.Transaction) bool {
		return t.Type == transactionType && matchesDateRange(t.Date, startDate, endDate)
	}, limit, offset)
}

func (m *MockTransactionRepository) FindByUserCategoryAndDateRange(userID, categoryID int64, startDate, endDate *time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	m.LastFinder = "FindByUserCategoryAndDateRange"
	return m.findFiltered(userID, func(t domain.Transaction) bool {
		return t.CategoryID != nil && *t.CategoryID == categoryID && matchesDateRange(t.Date, startDate, endDate)
	}, limit, offset)
}

func (m *MockTransactionRepository) FindByUserTypeCategoryAndDateRange(userID int64, transactionType string, categoryID int64, startDate, endDate *time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	m.LastFinder = "FindByUserTypeCategoryAndDateRange"
	return m.findFiltered(userID, func(t domain.Transaction) bool {
		return t.Type == transactionType && t.CategoryID != nil && *t.CategoryID == categoryID && matchesDateRange(t.Date, startDate, endDate)
	}, limit, offset)
}
