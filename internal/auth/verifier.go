package auth

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kurochkinivan/inspection_data/internal/domain"
)

type Decision int

const (
	Allowed Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

type Claims struct {
	jwt.RegisteredClaims
	Roles []domain.Role `json:"roles"`
}

func (c *Claims) HasAnyRole(roles ...domain.Role) bool {
	for _, role := range roles {
		if slices.Contains(c.Roles, role) {
			return true
		}
	}

	return false
}

// Result carries Claims only when the token itself was valid.
type Result struct {
	Decision Decision
	Claims   *Claims
	Err      error
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("auth secret is empty")
	}

	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) Issue(subject string, roles []domain.Role, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Roles: roles,
	})

	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (v *Verifier) Authorize(tokenString string, allowed ...domain.Role) Result {
	if tokenString == "" {
		return Result{Decision: Unauthenticated, Err: errors.New("missing bearer token")}
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Result{Decision: Unauthenticated, Err: fmt.Errorf("failed to parse token: %w", err)}
	}

	if !claims.HasAnyRole(allowed...) {
		return Result{
			Decision: Forbidden,
			Claims:   claims,
			Err:      fmt.Errorf("subject %q has none of the required roles", claims.Subject),
		}
	}

	return Result{Decision: Allowed, Claims: claims}
}
