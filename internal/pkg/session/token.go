package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"ordertracker/internal/entities"
)

var ErrInvalidToken = errors.New("invalid session token")

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (i *Issuer) Issue(username string, role entities.Role) (string, Session, error) {
	now := i.now()
	tokenID := uuid.NewString()

	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("sign token: %w", err)
	}

	return token, Session{Username: username, Role: role, TokenID: tokenID}, nil
}

func (i *Issuer) Parse(tokenStr string) (Session, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	s := Session{
		Username: claims.Subject,
		Role:     entities.Role(claims.Role),
		TokenID:  claims.ID,
	}
	if !s.IsAuthenticated() {
		return Session{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return s, nil
}
