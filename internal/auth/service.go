package auth

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
)

// UserRepository is the slice of the user store this service needs.
type UserRepository interface {
	GetByUsername(username string) (*datamodel.User, error)
}

type TokenGenerator interface {
	GenerateToken(userID, username string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	logger         *slog.Logger
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		logger:         logger,
	}
}

// SignIn verifies credentials and mints a session token. The two failure
// messages differ internally but neither reveals whether the username
// exists.
func (s *Service) SignIn(dto LoginDTO) (string, error) {
	s.logger.Debug("signIn", "username", dto.Username)

	if err := dto.Validate(); err != nil {
		return "", err
	}

	u, err := s.userRepo.GetByUsername(dto.Username)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return "", internal.ErrCredentialsIncorrect
		}
		s.logger.Error("failed to look up user", "error", err, "username", dto.Username)
		return "", internal.NewInternalError("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return "", internal.ErrCredentialsInvalid
	}

	token, err := s.tokenGenerator.GenerateToken(u.ID, u.Username)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "username", dto.Username)
		return "", internal.NewInternalError("failed to generate token", err)
	}

	return token, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// JWTTokenGenerator signs session tokens with HS256. No expiry claim is
// set here; the session lifetime is the transport cookie's concern.
type JWTTokenGenerator struct {
	Secret []byte
}

func NewJWTTokenGenerator(secret string) *JWTTokenGenerator {
	return &JWTTokenGenerator{Secret: []byte(secret)}
}

func (j *JWTTokenGenerator) GenerateToken(userID, username string) (string, error) {
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		return nil, internal.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, internal.ErrInvalidToken
}
