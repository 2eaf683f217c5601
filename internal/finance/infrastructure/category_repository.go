package infrastructure

import (
	"database/sql"
	"fmt"

	"github.com/mwielgus/finance-tracker/internal/finance/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	query := `
		INSERT INTO category (name, color, user_id)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id
	`
	err := r.db.QueryRow(query, category.Name, category.Color, category.UserID).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("could not save category: %v", err)
	}
	return nil
}

func (r *CategoryRepository) FindByUser(userID int64) ([]domain.Category, error) {
	query := `
		SELECT id, name, COALESCE(color, ''), user_id
		FROM category
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %v", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Color, &category.UserID); err != nil {
			return nil, fmt.Errorf("could not scan category: %v", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list categories: %v", err)
	}
	return categories, nil
}

// FindByIDAndUser returns (nil, nil) when the category is absent or belongs
// to another user; the two cases are indistinguishable on purpose.
func (r *CategoryRepository) FindByIDAndUser(categoryID, userID int64) (*domain.Category, error) {
	query := `
		SELECT id, name, COALESCE(color, ''), user_id
		FROM category
		WHERE id = $1 AND user_id = $2
	`
	var category domain.Category
	err := r.db.QueryRow(query, categoryID, userID).Scan(&category.ID, &category.Name, &category.Color, &category.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("could not find category: %v", err)
	}
	return &category, nil
}

func (r *CategoryRepository) Update(category domain.Category) error {
	query := `
		UPDATE category
		SET name = $2, color = NULLIF($3, '')
		WHERE id = $1
	`
	_, err := r.db.Exec(query, category.ID, category.Name, category.Color)
	if err != nil {
		return fmt.Errorf("could not update category: %v", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(categoryID int64) error {
	_, err := r.db.Exec(`DELETE FROM category WHERE id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("could not delete category: %v", err)
	}
	return nil
}
