package services

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	apperrors "flowdesk.com/flowdesk/internal/errors"
	model "flowdesk.com/flowdesk/internal/models"
	repository "flowdesk.com/flowdesk/internal/repositories"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9._]+$`)

// sessionAudience marks login tokens. Invite tokens are signed with
// the same secret, so each token kind carries its own audience and is
// rejected everywhere the other kind is expected.
const sessionAudience = "flowdesk-session"

type AuthService struct {
	users  *repository.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, username, email, string(hash))
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GenerateToken(user *model.User) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		Audience:  jwt.ClaimStrings{sessionAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

// ParseToken returns the subject user id of a valid session token.
// Tokens minted for another purpose, invite links included, fail the
// audience check.
func (s *AuthService) ParseToken(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithAudience(sessionAudience),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}

func validateUsername(username string) error {
	switch {
	case len(username) < 2:
		return badRequest("username is too short, minimum length is 2 characters")
	case len(username) > 30:
		return badRequest("username is too long, maximum length is 30 characters")
	case !usernamePattern.MatchString(username):
		return badRequest("username may only contain lowercase letters, digits, '.' and '_'")
	}
	return nil
}

func badRequest(msg string) error {
	return &apperrors.Exception{Message: msg, StatusCode: http.StatusBadRequest}
}
