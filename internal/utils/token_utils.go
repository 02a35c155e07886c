package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims carried by a short-lived access token.
// Subject is the numeric user id in string form.
type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RefreshClaims are the claims carried by a refresh token. Typ distinguishes
// refresh tokens from access tokens so one can never stand in for the other.
type RefreshClaims struct {
	Typ string `json:"typ"`
	jwt.RegisteredClaims
}

const refreshTokenType = "refresh"

// GenerateAccessToken signs a new HS256 access token for the given user.
func GenerateAccessToken(userID string, role string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateRefreshToken signs a new HS256 refresh token. It must be signed with
// the dedicated refresh secret, never the access secret.
func GenerateRefreshToken(userID string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		Typ: refreshTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken validates signature and standard claims of an access token.
func ParseAccessToken(tokenString string, secretKey string) (*AccessClaims, error) {
	claims := &AccessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Don't forget to validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}

// ParseRefreshToken validates a refresh token and asserts its typ claim.
func ParseRefreshToken(tokenString string, secretKey string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Typ != refreshTokenType {
		return nil, errors.New("token is not a refresh token")
	}

	return claims, nil
}
