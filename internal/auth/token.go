package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every validation failure: bad signature, expiry,
// or missing claims. Callers get no finer detail.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the claim set a validated token resolves to.
type Identity struct {
	Username string
	UserID   uint
}

// TokenService issues and validates HS256-signed bearer tokens. The secret
// is fixed at construction; there is no rotation and no revocation, so a
// token stays valid until its expiry instant.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) Issue(username string, userID uint, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"id":  userID,
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Validate(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	username, ok1 := claims["sub"].(string)
	userID, ok2 := claims["id"].(float64)
	if !ok1 || !ok2 {
		return Identity{}, ErrInvalidToken
	}

	return Identity{Username: username, UserID: uint(userID)}, nil
}
