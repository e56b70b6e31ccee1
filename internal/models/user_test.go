package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidMembership(t *testing.T) {
	assert.True(t, ValidMembership(MembershipFree))
	assert.True(t, ValidMembership(MembershipAnnual))
	assert.True(t, ValidMembership(MembershipLifetime))
	assert.False(t, ValidMembership("platinum"))
	assert.False(t, ValidMembership(""))
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := User{
		ID:           1,
		Email:        "farmer@example.com",
		PasswordHash: "bcrypt-hash",
	}
	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bcrypt-hash")
	assert.NotContains(t, string(raw), "password")
}
