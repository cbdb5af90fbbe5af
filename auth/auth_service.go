package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	InsertUser(ctx context.Context, user User) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
}

type Service struct {
	repo     UserRepository
	secret   []byte
	tokenTTL time.Duration
	cache    *cache.Cache
}

func NewService(repo UserRepository, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		cache:    cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (User, error) {
	username = strings.TrimSpace(username)

	if len(username) == 0 || len(password) == 0 {
		return User{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.InsertUser(ctx, User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login verifies the password and issues a signed bearer token. A missing
// user and a wrong password are the same outcome on purpose.
func (s *Service) Login(ctx context.Context, username, password string) (string, User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)

	if errors.Is(err, ErrUserNotFound) {
		return "", User{}, ErrInvalidCredentials
	}

	if err != nil {
		return "", User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)

	if err != nil {
		return "", User{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}

// Authenticate resolves a bearer token to its user. Revoked tokens are
// rejected until they expire; resolved users are cached briefly to keep
// per-request lookups off the database.
func (s *Service) Authenticate(ctx context.Context, token string) (User, error) {
	claims, err := s.parseToken(token)

	if err != nil {
		return User{}, ErrInvalidToken
	}

	if _, revoked := s.cache.Get(revokedKey(claims.ID)); revoked {
		return User{}, ErrInvalidToken
	}

	if cached, found := s.cache.Get(userKey(claims.Subject)); found {
		return cached.(User), nil
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)

	if err != nil {
		return User{}, ErrInvalidToken
	}

	user, err := s.repo.GetUserByID(ctx, id)

	if errors.Is(err, ErrUserNotFound) {
		return User{}, ErrInvalidToken
	}

	if err != nil {
		return User{}, err
	}

	s.cache.Set(userKey(claims.Subject), user, cache.DefaultExpiration)

	return user, nil
}

// Logout revokes the token for the remainder of its lifetime.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)

	if err != nil {
		return ErrInvalidToken
	}

	ttl := s.tokenTTL

	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}

	s.cache.Set(revokedKey(claims.ID), true, ttl)
	s.cache.Delete(userKey(claims.Subject))

	return nil
}

func (s *Service) issueToken(user User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Admin:    user.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) parseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)

	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func revokedKey(jti string) string { return "revoked:" + jti }

func userKey(sub string) string { return "user:" + sub }
