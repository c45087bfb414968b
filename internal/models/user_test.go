// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	user := &User{}

	require.NoError(t, user.SetPassword("Str0ng!Pass"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "Str0ng!Pass", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("Str0ng!Pass"))
	assert.Error(t, user.CheckPassword("wrong-password"))
}

func TestSetPasswordProducesUniqueHashes(t *testing.T) {
	a, b := &User{}, &User{}
	require.NoError(t, a.SetPassword("Str0ng!Pass"))
	require.NoError(t, b.SetPassword("Str0ng!Pass"))

	// bcrypt salts per call
	assert.NotEqual(t, a.PasswordHash, b.PasswordHash)
}

func TestUserRoleValidation(t *testing.T) {
	assert.True(t, RoleSuperAdmin.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.False(t, UserRole("Moderator").Valid())

	assert.True(t, RoleSuperAdmin.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
	assert.False(t, RoleUser.IsStaff())
}

func TestSignInMethodValidation(t *testing.T) {
	assert.True(t, SignInMethodEmail.Valid())
	assert.True(t, SignInMethodGoogle.Valid())
	assert.True(t, SignInMethodFacebook.Valid())
	assert.False(t, SignInMethod("twitter").Valid())
}
