package infrastructure

import "github.com/mwielgus/finance-tracker/internal/finance/domain"

// MockCategoryRepository is an in-memory stand-in for the SQL category
// repository.
type MockCategoryRepository struct {
	Categories []domain.Category
	nextID     int64
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(userID int64) ([]domain.Category, error) {
	var owned []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			owned = append(owned, category)
		}
	}
	return owned, nil
}

func (m *MockCategoryRepository) FindByIDAndUser(categoryID, userID int64) (*domain.Category, error) {
	for _, category := range m.Categories {
		if category.ID == categoryID && category.UserID == userID {
			found := category
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	for i, existing := range m.Categories {
		if existing.ID == category.ID {
			m.Categories[i] = category
			return nil
		}
	}
	return nil
}

func (m *MockCategoryRepository) Delete(categoryID int64) error {
	for i, existing := range m.Categories {
		if existing.ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}
