package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister_Success(t *testing.T) {
	service := NewUserService(&mockRepository{})

	user, err := service.Register("John Doe", "john@example.com", "s3cret-pass")
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "john@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, service.VerifyPassword(user, "s3cret-pass"))
	assert.False(t, service.VerifyPassword(user, "wrong-pass"))
}

func TestRegister_TrimsEmail(t *testing.T) {
	service := NewUserService(&mockRepository{})

	user, err := service.Register("John Doe", "  john@example.com  ", "s3cret-pass")
	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", user.Email)
}

func TestRegister_InvalidEmail(t *testing.T) {
	service := NewUserService(&mockRepository{})

	for _, email := range []string{"", "not-an-email", "@example.com", "john@"} {
		_, err := service.Register("John Doe", email, "s3cret-pass")
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q should be rejected", email)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service := NewUserService(&mockRepository{})

	_, err := service.Register("John Doe", "john@example.com", "s3cret-pass")
	assert.NoError(t, err)

	_, err = service.Register("Jane Doe", "john@example.com", "other-pass")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUpdateUser_BlankPasswordKeepsHash(t *testing.T) {
	service := NewUserService(&mockRepository{})

	created, err := service.Register("John Doe", "john@example.com", "s3cret-pass")
	assert.NoError(t, err)

	updated, err := service.UpdateUser(created.ID, "John Updated", "john.new@example.com", "")
	assert.NoError(t, err)
	assert.Equal(t, "John Updated", updated.Name)
	assert.Equal(t, "john.new@example.com", updated.Email)
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)
	assert.True(t, service.VerifyPassword(updated, "s3cret-pass"))
}

func TestUpdateUser_NewPasswordRehashed(t *testing.T) {
	service := NewUserService(&mockRepository{})

	created, err := service.Register("John Doe", "john@example.com", "s3cret-pass")
	assert.NoError(t, err)

	updated, err := service.UpdateUser(created.ID, "John Doe", "john@example.com", "new-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, created.PasswordHash, updated.PasswordHash)
	assert.True(t, service.VerifyPassword(updated, "new-pass"))
	assert.False(t, service.VerifyPassword(updated, "s3cret-pass"))
}

func TestUpdateUser_UnknownID(t *testing.T) {
	service := NewUserService(&mockRepository{})

	_, err := service.UpdateUser(999, "Nobody", "nobody@example.com", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResolveOwnerID(t *testing.T) {
	service := NewUserService(&mockRepository{})

	created, err := service.Register("John Doe", "john@example.com", "s3cret-pass")
	assert.NoError(t, err)

	id, err := service.ResolveOwnerID("john@example.com")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, id)

	_, err = service.ResolveOwnerID("ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserExists(t *testing.T) {
	service := NewUserService(&mockRepository{})

	created, err := service.Register("John Doe", "john@example.com", "s3cret-pass")
	assert.NoError(t, err)

	exists, err := service.UserExists(created.ID)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = service.UserExists(999)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestGetAllUsers_EmptyList(t *testing.T) {
	service := NewUserService(&mockRepository{})

	users, err := service.GetAllUsers()
	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestDeleteUser(t *testing.T) {
	service := NewUserService(&mockRepository{})

	created, err := service.Register("John Doe", "john@example.com", "s3cret-pass")
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteUser(created.ID))
	assert.ErrorIs(t, service.DeleteUser(created.ID), ErrUserNotFound)
}
