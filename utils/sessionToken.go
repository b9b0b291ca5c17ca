package utils

import (
	"crypto/rand"
	"time"

	"github.com/o1egl/paseto"
	"github.com/pkg/errors"
)

// SessionExpiry bounds how long an interactive session token stays valid.
const SessionExpiry = 12 * time.Hour

// SessionClaims carries the identity the UI shell needs for role-based
// navigation.
type SessionClaims struct {
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Expiry   time.Time `json:"expiry"`
}

// symmetricKey is generated once per process start. Sessions deliberately
// do not outlive the process: the application is a single interactive
// desktop session, so there is nothing to resume after a restart.
var symmetricKey = newSymmetricKey()

func newSymmetricKey() []byte {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate session key: " + err.Error())
	}
	return key
}

// GenerateSessionToken issues an encrypted session token for the given
// identity.
func GenerateSessionToken(username, role string) (string, error) {
	claims := SessionClaims{
		Username: username,
		Role:     role,
		Expiry:   time.Now().Add(SessionExpiry),
	}
	token, err := paseto.NewV2().Encrypt(symmetricKey, claims, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}
	return token, nil
}

// ValidateSessionToken decrypts a session token, checks expiry and the
// required roles (none required means any valid session passes).
func ValidateSessionToken(tokenString string, requiredRoles ...string) (*SessionClaims, error) {
	var claims SessionClaims
	if err := paseto.NewV2().Decrypt(tokenString, symmetricKey, &claims, nil); err != nil {
		return nil, errors.Wrap(err, "failed to decrypt session token")
	}
	if time.Now().After(claims.Expiry) {
		return nil, errors.New("session expired")
	}
	if len(requiredRoles) == 0 {
		return &claims, nil
	}
	for _, role := range requiredRoles {
		if claims.Role == role {
			return &claims, nil
		}
	}
	return nil, errors.New("insufficient permissions")
}
