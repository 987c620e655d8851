package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/austintylerallen/civicstack/internal/models"
)

const testSecret = "test-secret"

func testUser(id uint, role models.UserRole) *models.User {
	return &models.User{
		Model: gorm.Model{ID: id},
		Email: "user@civicstack.gov",
		Role:  role,
	}
}

func TestSignParseRoundTrip(t *testing.T) {
	token, err := Sign(testUser(42, models.RoleAdmin), testSecret)
	require.NoError(t, err)

	claims, err := Parse(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Sign(testUser(1, models.RoleStaff), testSecret)
	require.NoError(t, err)

	_, err = Parse(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	claims := &Claims{
		UserID: 1,
		Role:   "staff",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Parse(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
