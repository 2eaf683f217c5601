package infrastructure

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mwielgus/finance-tracker/internal/finance/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	query := `
		INSERT INTO transaction (user_id, category_id, amount, type, description, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(
		query,
		transaction.UserID, transaction.CategoryID, transaction.Amount,
		transaction.Type, transaction.Description, transaction.Date,
	).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("could not save transaction: %v", err)
	}
	return nil
}

func (r *TransactionRepository) FindByID(transactionID int64) (*domain.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.category_id, c.name, t.amount, t.type, COALESCE(t.description, ''), t.date
		FROM transaction t
		LEFT JOIN category c ON c.id = t.category_id
		WHERE t.id = $1
	`
	var transaction domain.Transaction
	err := r.db.QueryRow(query, transactionID).Scan(
		&transaction.ID, &transaction.UserID, &transaction.CategoryID, &transaction.CategoryName,
		&transaction.Amount, &transaction.Type, &transaction.Description, &transaction.Date,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("could not find transaction: %v", err)
	}
	return &transaction, nil
}

// UpdateOwned rewrites every mutable field of the row identified by both id
// and owner. The ownership predicate inside the statement makes the
// check-then-write pair atomic against a concurrent delete.
func (r *TransactionRepository) UpdateOwned(transaction domain.Transaction) (bool, error) {
	query := `
		UPDATE transaction
		SET category_id = $3, amount = $4, type = $5, description = $6, date = $7
		WHERE id = $1 AND user_id = $2
	`
	result, err := r.db.Exec(
		query,
		transaction.ID, transaction.UserID, transaction.CategoryID,
		transaction.Amount, transaction.Type, transaction.Description, transaction.Date,
	)
	if err != nil {
		return false, fmt.Errorf("could not update transaction: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not update transaction: %v", err)
	}
	return affected > 0, nil
}

func (r *TransactionRepository) DeleteOwned(transactionID, userID int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM transaction WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return false, fmt.Errorf("could not delete transaction: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not delete transaction: %v", err)
	}
	return affected > 0, nil
}

// findPage runs one owner-scoped filtered query plus its count twin. Extra
// conditions are appended with fresh placeholders so every finder below stays
// a thin composition of predicates.
func (r *TransactionRepository) findPage(userID int64, conditions []string, args []interface{}, limit, offset int) ([]domain.Transaction, int, error) {
	where := "t.user_id = $1"
	queryArgs := append([]interface{}{userID}, args...)
	for i, condition := range conditions {
		where += fmt.Sprintf(" AND "+condition, i+2)
	}

	countQuery := "SELECT COUNT(*) FROM transaction t WHERE " + where
	var total int
	if err := r.db.QueryRow(countQuery, queryArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("could not count transactions: %v", err)
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.user_id, t.category_id, c.name, t.amount, t.type, COALESCE(t.description, ''), t.date
		FROM transaction t
		LEFT JOIN category c ON c.id = t.category_id
		WHERE %s
		ORDER BY t.date DESC, t.id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(queryArgs)+1, len(queryArgs)+2)
	queryArgs = append(queryArgs, limit, offset)

	rows, err := r.db.Query(query, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("could not list transactions: %v", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(
			&transaction.ID, &transaction.UserID, &transaction.CategoryID, &transaction.CategoryName,
			&transaction.Amount, &transaction.Type, &transaction.Description, &transaction.Date,
		); err != nil {
			return nil, 0, fmt.Errorf("could not scan transaction: %v", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("could not list transactions: %v", err)
	}
	return transactions, total, nil
}

// dateConditions renders an inclusive range; a single bound filters on that
// bound alone.
func dateConditions(startDate, endDate *time.Time) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}
	if startDate != nil {
		conditions = append(conditions, "t.date >= $%d")
		args = append(args, *startDate)
	}
	if endDate != nil {
		conditions = append(conditions, "t.date <= $%d")
		args = append(args, *endDate)
	}
	return conditions, args
}

func (r *TransactionRepository) FindByUser(userID int64, limit, offset int) ([]domain.Transaction, int, error) {
	return r.findPage(userID, nil, nil, limit, offset)
}

func (r *TransactionRepository) FindByUserAndType(userID int64, transactionType string, limit, offset int) ([]domain.Transaction, int, error) {
	return r.findPage(userID, []string{"t.type = $%d"}, []interface{}{transactionType}, limit, offset)
}

func (r *TransactionRepository) FindByUserAndCategory(userID, categoryID int64, limit, offset int) ([]domain.Transaction, int, error) {
	return r.findPage(userID, []string{"t.category_id = $%d"}, []interface{}{categoryID}, limit, offset)
}

func (r *TransactionRepository) FindByUserAndDateRange(userID int64, startDate, endDate *time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	conditions, args := dateConditions(startDate, endDate)
	return r.findPage(userID, conditions, args, limit, offset)
}

func (r *TransactionRepository) FindByUserTypeAndCategory(userID int64, transactionType string, categoryID int64, limit, offset int) ([]domain.Transaction, int, error) {
	return r.findPage(
		userID,
		[]string{"t.type = $%d", "t.category_id = $%d"},
		[]interface{}{transactionType, categoryID},
		limit, offset,
	)
}

func (r *TransactionRepository) FindByUserTypeAndDateRange(userID int64, transactionType string, startDate, endDate *time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	conditions, args := dateConditions(startDate, endDate)
	return r.findPage(
		userID,
		append([]string{"t.type = $%d"}, conditions...),
		append([]interface{}{transactionType}, args...),
		limit, offset,
	)
}

func (r *TransactionRepository) FindByUserCategoryAndDateRange(userID, categoryID int64, startDate, endDate *time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	conditions, args := dateConditions(startDate, endDate)
	return r.findPage(
		userID,
		append([]string{"t.category_id = $%d"}, conditions...),
		append([]interface{}{categoryID}, args...),
		limit, offset,
	)
}

func (r *TransactionRepository) FindByUserTypeCategoryAndDateRange(userID int64, transactionType string, categoryID int64, startDate, endDate *time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	conditions, args := dateConditions(startDate, endDate)
	return r.findPage(
		userID,
		append([]string{"t.type = $%d", "t.category_id = $%d"}, conditions...),
		append([]interface{}{transactionType, categoryID}, args...),
		limit, offset,
	)
}
