package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.Issue("user1", "employer")
	assert.NoError(t, err)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user1", claims.Subject)
	assert.Equal(t, "employer", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Issue("user1", "jobseeker")
	assert.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := NewManager("secret", -time.Minute).Issue("user1", "jobseeker")
	assert.NoError(t, err)

	_, err = NewManager("secret", time.Hour).Parse(token)
	assert.Error(t, err)
}
