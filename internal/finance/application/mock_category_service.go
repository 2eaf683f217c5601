package application

import "github.com/mwielgus/finance-tracker/internal/finance/domain"

// MockCategoryService resolves category ownership from a fixed map,
// keyed by category id.
type MockCategoryService struct {
	Categories map[int64]domain.Category
}

func (m *MockCategoryService) GetCategoryByIDAndUser(categoryID, userID int64) (*domain.Category, error) {
	category, ok := m.Categories[categoryID]
	if !ok || category.UserID != userID {
		return nil, nil
	}
	return &category, nil
}

// MockUserDirectory reports existence for a fixed set of user ids.
type MockUserDirectory struct {
	Users map[int64]bool
}

func (m *MockUserDirectory) UserExists(userID int64) (bool, error) {
	return m.Users[userID], nil
}
