package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevans93/rent-and-co-sub001/internal/model"
)

func testUser() *model.User {
	return &model.User{ID: "u-1", FirstName: "Marko", LastName: "Petrović", Email: "marko@example.com", Role: model.RoleAdmin}
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	tok, err := m.Issue(testUser())
	require.NoError(t, err)

	c, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.ID)
	assert.Equal(t, "Marko", c.FirstName)
	assert.Equal(t, "marko@example.com", c.Email)
	assert.True(t, c.IsAdmin())
	assert.Equal(t, Issuer, c.Issuer)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tok, err := NewTokenManager("secret-A", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = NewTokenManager("secret-B", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := m.Issue(testUser())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{ID: "u-1", RegisteredClaims: jwt.RegisteredClaims{Issuer: Issuer}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewTokenManager("secret", time.Hour).Parse("")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestExtractToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, "", ExtractToken(r))

	r.Header.Set("Authorization", "Bearer abc.def")
	assert.Equal(t, "abc.def", ExtractToken(r))

	r.Header.Set("Authorization", "bearer  xyz ")
	assert.Equal(t, "xyz", ExtractToken(r))

	r.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	assert.Equal(t, "", ExtractToken(r))
}
