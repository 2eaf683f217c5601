package application

import (
	"github.com/mwielgus/finance-tracker/internal/finance/domain"
	financeErrors "github.com/mwielgus/finance-tracker/internal/finance/errors"
)

// CategoryService is the ownership-scoped category manager.
type CategoryService struct {
	repo  domain.CategoryRepository
	users UserDirectory
}

func NewCategoryService(repo domain.CategoryRepository, users UserDirectory) *CategoryService {
	return &CategoryService{repo: repo, users: users}
}

func (s *CategoryService) CreateCategory(draft domain.CategoryDraft, userID int64) (*domain.Category, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.users.UserExists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, financeErrors.ErrOwnerNotFound
	}

	category := &domain.Category{
		Name:   draft.Name,
		Color:  draft.Color,
		UserID: userID,
	}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetUserCategories(userID int64) ([]domain.Category, error) {
	categories, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// GetCategoryByIDAndUser returns (nil, nil) when the category is absent or
// not owned; callers decide whether absence is an error.
func (s *CategoryService) GetCategoryByIDAndUser(categoryID, userID int64) (*domain.Category, error) {
	return s.repo.FindByIDAndUser(categoryID, userID)
}

func (s *CategoryService) UpdateCategory(categoryID, userID int64, draft domain.CategoryDraft) (*domain.Category, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	category, err := s.repo.FindByIDAndUser(categoryID, userID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, financeErrors.ErrCategoryNotFound
	}

	category.Name = draft.Name
	category.Color = draft.Color
	if err := s.repo.Update(*category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(categoryID, userID int64) error {
	category, err := s.repo.FindByIDAndUser(categoryID, userID)
	if err != nil {
		return err
	}
	if category == nil {
		return financeErrors.ErrCategoryNotFound
	}
	return s.repo.Delete(category.ID)
}
