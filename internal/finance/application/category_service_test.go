package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwielgus/finance-tracker/internal/finance/domain"
	financeErrors "github.com/mwielgus/finance-tracker/internal/finance/errors"
	"github.com/mwielgus/finance-tracker/internal/finance/infrastructure"
)

func newTestCategoryService() (*CategoryService, *infrastructure.MockCategoryRepository) {
	repo := &infrastructure.MockCategoryRepository{}
	users := &MockUserDirectory{Users: map[int64]bool{1: true, 2: true}}
	return NewCategoryService(repo, users), repo
}

func TestCreateCategory_Success(t *testing.T) {
	service, repo := newTestCategoryService()

	category, err := service.CreateCategory(domain.CategoryDraft{Name: "Groceries", Color: "#00FF00"}, 1)
	assert.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, int64(1), category.UserID)
	assert.Len(t, repo.Categories, 1)
}

func TestCreateCategory_BlankName(t *testing.T) {
	service, repo := newTestCategoryService()

	_, err := service.CreateCategory(domain.CategoryDraft{Name: ""}, 1)
	assert.Error(t, err)

	var validationErrors *financeErrors.ValidationErrors
	assert.True(t, errors.As(err, &validationErrors))
	assert.Empty(t, repo.Categories)
}

func TestCreateCategory_UnknownOwner(t *testing.T) {
	service, _ := newTestCategoryService()

	_, err := service.CreateCategory(domain.CategoryDraft{Name: "Groceries"}, 999)
	assert.ErrorIs(t, err, financeErrors.ErrOwnerNotFound)
}

func TestGetUserCategories_OwnerScoped(t *testing.T) {
	service, _ := newTestCategoryService()

	_, err := service.CreateCategory(domain.CategoryDraft{Name: "Groceries"}, 1)
	assert.NoError(t, err)
	_, err = service.CreateCategory(domain.CategoryDraft{Name: "Salary"}, 2)
	assert.NoError(t, err)

	categories, err := service.GetUserCategories(1)
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, "Groceries", categories[0].Name)

	// A user with nothing recorded gets an empty list, never nil.
	empty, err := service.GetUserCategories(999)
	assert.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestGetCategoryByIDAndUser_ForeignOwnerLooksAbsent(t *testing.T) {
	service, _ := newTestCategoryService()

	created, err := service.CreateCategory(domain.CategoryDraft{Name: "Groceries"}, 1)
	assert.NoError(t, err)

	category, err := service.GetCategoryByIDAndUser(created.ID, 2)
	assert.NoError(t, err)
	assert.Nil(t, category)
}

func TestUpdateCategory_NotOwned(t *testing.T) {
	service, _ := newTestCategoryService()

	created, err := service.CreateCategory(domain.CategoryDraft{Name: "Groceries"}, 1)
	assert.NoError(t, err)

	_, err = service.UpdateCategory(created.ID, 2, domain.CategoryDraft{Name: "Hijacked"})
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
}

func TestUpdateCategory_Success(t *testing.T) {
	service, repo := newTestCategoryService()

	created, err := service.CreateCategory(domain.CategoryDraft{Name: "Groceries"}, 1)
	assert.NoError(t, err)

	updated, err := service.UpdateCategory(created.ID, 1, domain.CategoryDraft{Name: "Food", Color: "#FFAA00"})
	assert.NoError(t, err)
	assert.Equal(t, "Food", updated.Name)
	assert.Equal(t, "#FFAA00", updated.Color)
	assert.Equal(t, "Food", repo.Categories[0].Name)
}

func TestDeleteCategory_Semantics(t *testing.T) {
	service, repo := newTestCategoryService()

	created, err := service.CreateCategory(domain.CategoryDraft{Name: "Groceries"}, 1)
	assert.NoError(t, err)

	assert.ErrorIs(t, service.DeleteCategory(created.ID, 2), financeErrors.ErrCategoryNotFound)
	assert.NoError(t, service.DeleteCategory(created.ID, 1))
	assert.Empty(t, repo.Categories)
	assert.ErrorIs(t, service.DeleteCategory(created.ID, 1), financeErrors.ErrCategoryNotFound)
}
