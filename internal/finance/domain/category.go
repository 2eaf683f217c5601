package domain

import (
	"github.com/mwielgus/finance-tracker/internal/finance/errors"
)

const maxCategoryNameLength = 100

// Category is a user-defined spending or income bucket. Every category
// belongs to exactly one user and ownership never changes.
type Category struct {
	ID     int64
	Name   string
	Color  string
	UserID int64
}

// CategoryDraft carries the caller-supplied fields of a create or update
// request.
type CategoryDraft struct {
	Name  string
	Color string
}

func (d *CategoryDraft) Validate() error {
	var validationErrors = &errors.ValidationErrors{}

	if d.Name == "" {
		validationErrors.Add(errors.NewFieldValidationError("name", "Category name is required"))
	}
	if len(d.Name) > maxCategoryNameLength {
		validationErrors.Add(errors.NewFieldValidationError("name", "Category name must be at most 100 characters"))
	}

	if len(validationErrors.Errors) > 0 {
		return validationErrors
	}
	return nil
}

// CategoryRepository is the persistence gateway for categories. Lookups are
// owner-scoped; FindByIDAndUser returns (nil, nil) when the category is
// absent or owned by somebody else.
type CategoryRepository interface {
	Save(category *Category) error
	FindByUser(userID int64) ([]Category, error)
	FindByIDAndUser(categoryID, userID int64) (*Category, error)
	Update(category Category) error
	Delete(categoryID int64) error
}
