package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rexapp/rex-backend/internal/jwt"
	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
	"github.com/rexapp/rex-backend/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email or username already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// TokenIssuer defines an interface for issuing and validating tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, subject string, kind jwt.TokenKind) (string, error)
	Validate(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration, login and token refresh.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	tokens      TokenIssuer
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		tokens:      tokens,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new active user with a hashed password. The email
// pre-check is an optimization; the unique index is the real guard, and its
// violation maps to the same conflict.
func (svc *AuthService) Register(ctx context.Context, email, password, username string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		Email:          email,
		Username:       username,
		PasswordHash:   string(hashedPassword),
		PreferredUnits: "km",
		IsActive:       true,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, newEvent("user_registered", user.ID.Hex(), ""))

	return user, nil
}

// Login authenticates a user by email and returns access and refresh tokens.
// A missing user and a wrong password are not distinguished.
func (svc *AuthService) Login(ctx context.Context, email, password string) (access, refresh string, err error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", "", ErrInvalidCredentials
	}

	access, err = svc.tokens.Generate(ctx, user.Email, jwt.KindAccess)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}
	refresh, err = svc.tokens.Generate(ctx, user.Email, jwt.KindRefresh)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}

	return access, refresh, nil
}

// Refresh exchanges a valid refresh token for a new access token. An access
// token presented here fails jwt.ErrInvalidToken.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := svc.tokens.Validate(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Kind != jwt.KindRefresh {
		return "", jwt.ErrInvalidToken
	}

	return svc.tokens.Generate(ctx, claims.Subject, jwt.KindAccess)
}
