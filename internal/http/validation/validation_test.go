package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionName(t *testing.T) {
	assert.NoError(t, PermissionName("USER_READ"))
	assert.NoError(t, PermissionName("ORDERS"))

	for _, bad := range []string{"user_read", "USER-READ", "User_Read", "_USER", "USER_", ""} {
		err := PermissionName(bad)
		assert.Error(t, err, "%q must be rejected", bad)
		if err != nil {
			assert.Contains(t, err.Error(), "uppercase")
		}
	}
}

func TestPasswordPair(t *testing.T) {
	assert.False(t, PasswordPair("secret1", "secret1").Any())

	fe := PasswordPair("abc", "abcd")
	assert.Equal(t, "Passwords do not match", fe["confirm_password"])
	assert.NotEmpty(t, fe["password"], "too short as well")

	fe = PasswordPair("long-enough", "different")
	assert.True(t, fe.Any())
	assert.Equal(t, "Passwords do not match", fe["confirm_password"])
}
