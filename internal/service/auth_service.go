package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

var (
	ErrBadCredentials = errors.New("bad credentials")
	ErrInvalidToken   = errors.New("invalid or expired token")
)

const RoleAdmin = "admin"

type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// AuthService issues and verifies the admin session token. A single
// shared password guards the whole backend; there are no user accounts.
type AuthService struct {
	password string
	secret   []byte
}

func NewAuthService(password, secret string) *AuthService {
	return &AuthService{
		password: password,
		secret:   []byte(secret),
	}
}

// Login compares the given password against the configured secret and,
// on match, returns a signed token valid for 24 hours.
func (s *AuthService) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) != 1 {
		return "", ErrBadCredentials
	}
	return s.GenerateToken(RoleAdmin, 24*time.Hour)
}

func (s *AuthService) GenerateToken(role string, duration time.Duration) (string, error) {
	expirationTime := time.Now().Add(duration)
	claims := &Claims{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Id:        uuid.New().String(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "inkpot",
			Subject:   RoleAdmin,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses the token and returns its role claim. Any valid signed
// token grants access; the role is informational.
func (s *AuthService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	return role, nil
}
