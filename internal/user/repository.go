package user

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	createUser(user *User) error
	getAllUsers() ([]User, error)
	getUserByID(id int64) (*User, error)
	getUserByEmail(email string) (*User, error)
	userExistsByID(id int64) (bool, error)
	updateUser(user *User) error
	deleteUserCascade(id int64) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(user *User) error {
	query := `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("could not create user: %v", err)
	}
	return nil
}

func (r *userRepository) getAllUsers() ([]User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		ORDER BY id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %v", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("could not scan user: %v", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list users: %v", err)
	}
	return users, nil
}

func (r *userRepository) getUserByID(id int64) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user User
	err := r.db.QueryRow(query, id).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}
	return &user, nil
}

func (r *userRepository) getUserByEmail(email string) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user User
	err := r.db.QueryRow(query, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}
	return &user, nil
}

func (r *userRepository) userExistsByID(id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("could not check user existence: %v", err)
	}
	return exists, nil
}

func (r *userRepository) updateUser(user *User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(query, user.ID, user.Name, user.Email, user.PasswordHash).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("could not update user: %v", err)
	}
	return nil
}

// deleteUserCascade removes the user's transactions, then categories, then
// the user row, all inside one database transaction. No owned row may
// outlive its owner.
func (r *userRepository) deleteUserCascade(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin cascade delete: %v", err)
	}

	if _, err := tx.Exec(`DELETE FROM transaction WHERE user_id = $1`, id); err != nil {
		safeRollback(tx)
		return fmt.Errorf("could not delete user transactions: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM category WHERE user_id = $1`, id); err != nil {
		safeRollback(tx)
		return fmt.Errorf("could not delete user categories: %v", err)
	}

	result, err := tx.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		safeRollback(tx)
		return fmt.Errorf("could not delete user: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		safeRollback(tx)
		return fmt.Errorf("could not delete user: %v", err)
	}
	if affected == 0 {
		safeRollback(tx)
		return ErrUserNotFound
	}

	return tx.Commit()
}

func safeRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("Error during transaction rollback: %v", err)
	}
}
