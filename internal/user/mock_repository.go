package user

import "time"

// mockRepository is an in-memory Repository used by service tests.
type mockRepository struct {
	users  []User
	nextID int64
}

func (m *mockRepository) createUser(user *User) error {
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users = append(m.users, *user)
	return nil
}

func (m *mockRepository) getAllUsers() ([]User, error) {
	return append([]User(nil), m.users...), nil
}

func (m *mockRepository) getUserByID(id int64) (*User, error) {
	for _, user := range m.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByEmail(email string) (*User, error) {
	for _, user := range m.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) userExistsByID(id int64) (bool, error) {
	for _, user := range m.users {
		if user.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) updateUser(user *User) error {
	for i, existing := range m.users {
		if existing.ID == user.ID {
			user.UpdatedAt = time.Now()
			m.users[i] = *user
			return nil
		}
	}
	return ErrUserNotFound
}

func (m *mockRepository) deleteUserCascade(id int64) error {
	for i, existing := range m.users {
		if existing.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}
