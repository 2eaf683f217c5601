package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength = 254
	bcryptCost     = 12
)

var (
	ErrInvalidEmail       = fmt.Errorf("email address is not valid")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInternalError      = errors.New("internal Server Error")
)

// User is the account record. PasswordHash never leaves the service layer in
// a response; the JSON projection hides it.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Service interface {
	Register(name, email, password string) (*User, error)
	GetAllUsers() ([]User, error)
	GetUserByID(id int64) (*User, error)
	GetUserByEmail(email string) (*User, error)
	UpdateUser(id int64, name, email, password string) (*User, error)
	DeleteUser(id int64) error
	// ResolveOwnerID maps a verified principal email to the internal user id.
	// Every ownership check downstream runs on the id this returns.
	ResolveOwnerID(email string) (int64, error)
	UserExists(id int64) (bool, error)
	VerifyPassword(user *User, password string) bool
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func doPasswordsMatch(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(currPassword))
	return err == nil
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	if len(email) > maxEmailLength {
		return ErrInvalidEmail
	}
	return nil
}

func (s *service) Register(name, email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}

	_, err := s.repo.getUserByEmail(email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, ErrInternalError
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, ErrInternalError
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.repo.createUser(user); err != nil {
		return nil, ErrInternalError
	}
	return user, nil
}

func (s *service) GetAllUsers() ([]User, error) {
	users, err := s.repo.getAllUsers()
	if err != nil {
		return nil, err
	}
	if users == nil {
		return []User{}, nil
	}
	return users, nil
}

func (s *service) GetUserByID(id int64) (*User, error) {
	return s.repo.getUserByID(id)
}

func (s *service) GetUserByEmail(email string) (*User, error) {
	return s.repo.getUserByEmail(email)
}

// UpdateUser replaces name and email unconditionally; the password is
// re-hashed and replaced only when a non-blank value was supplied.
func (s *service) UpdateUser(id int64, name, email, password string) (*User, error) {
	user, err := s.repo.getUserByID(id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email
	if strings.TrimSpace(password) != "" {
		passwordHash, err := hashPassword(password)
		if err != nil {
			return nil, ErrInternalError
		}
		user.PasswordHash = passwordHash
	}

	if err := s.repo.updateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) DeleteUser(id int64) error {
	return s.repo.deleteUserCascade(id)
}

func (s *service) ResolveOwnerID(email string) (int64, error) {
	user, err := s.repo.getUserByEmail(email)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *service) UserExists(id int64) (bool, error) {
	return s.repo.userExistsByID(id)
}

func (s *service) VerifyPassword(user *User, password string) bool {
	return doPasswordsMatch(user.PasswordHash, password)
}
