package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingSecret = errors.New("auth: JWT secret not set")

// TokenParams describes a bearer token accepted by the API's write routes.
type TokenParams struct {
	Secret   string
	Issuer   string
	Audience string
	Subject  string
	TTL      time.Duration
}

func CreateToken(p TokenParams) (string, error) {
	if p.Secret == "" {
		return "", ErrMissingSecret
	}
	if p.Subject == "" {
		return "", fmt.Errorf("auth: subject is required")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   p.Subject,
			Audience:  jwt.ClaimStrings{p.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.TTL)),
		})

	tokenString, err := token.SignedString([]byte(p.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken checks signature, expiry, issuer and audience and returns the subject.
func VerifyToken(tokenString string, p TokenParams) (string, error) {
	if p.Secret == "" {
		return "", ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(p.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(p.Issuer),
		jwt.WithAudience(p.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims type %T", token.Claims)
	}
	return claims.Subject, nil
}
