package interfaces

import (
	"github.com/mwielgus/finance-tracker/internal/finance/domain"
	financeErrors "github.com/mwielgus/finance-tracker/internal/finance/errors"
)

// MockCategoryService is a configurable stand-in for the category service
// used by handler tests.
type MockCategoryService struct {
	CreateFunc func(draft domain.CategoryDraft, userID int64) (*domain.Category, error)
	ListFunc   func(userID int64) ([]domain.Category, error)
	GetFunc    func(categoryID, userID int64) (*domain.Category, error)
	UpdateFunc func(categoryID, userID int64, draft domain.CategoryDraft) (*domain.Category, error)
	DeleteFunc func(categoryID, userID int64) error
}

func (m *MockCategoryService) CreateCategory(draft domain.CategoryDraft, userID int64) (*domain.Category, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(draft, userID)
	}
	return nil, financeErrors.ErrOwnerNotFound
}

func (m *MockCategoryService) GetUserCategories(userID int64) ([]domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(userID)
	}
	return []domain.Category{}, nil
}

func (m *MockCategoryService) GetCategoryByIDAndUser(categoryID, userID int64) (*domain.Category, error) {
	if m.GetFunc != nil {
		return m.GetFunc(categoryID, userID)
	}
	return nil, nil
}

func (m *MockCategoryService) UpdateCategory(categoryID, userID int64, draft domain.CategoryDraft) (*domain.Category, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(categoryID, userID, draft)
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) DeleteCategory(categoryID, userID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(categoryID, userID)
	}
	return financeErrors.ErrCategoryNotFound
}
