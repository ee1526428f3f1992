package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenParser verifies access tokens issued by the identity provider
// and extracts the user id carried in the sub claim.
type TokenParser struct {
	secret []byte
	parser *jwt.Parser
}

func NewTokenParser(secret string) *TokenParser {
	return &TokenParser{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (tp *TokenParser) ParseUserID(rawToken string) (uuid.UUID, error) {
	if rawToken == "" {
		return uuid.Nil, ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := tp.parser.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		return tp.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject: %s", ErrInvalidToken, err)
	}

	return userID, nil
}
