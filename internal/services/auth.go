package services

import (
	"context"
	"errors"

	"github.com/jasik/momsnagging-api/internal/logger"
	"github.com/jasik/momsnagging-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("personal id already exists")
	ErrInvalidCredentials = errors.New("invalid personal id or password")
)

// AuthUserReader defines read-only user operations needed for authentication.
type AuthUserReader interface {
	GetByPersonalID(ctx context.Context, personalID string) (*models.UserDB, error)
}

// AuthUserWriter defines write operations needed for registration.
type AuthUserWriter interface {
	Create(ctx context.Context, personalID, passwordHash, nickname string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader AuthUserReader
	writer AuthUserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AuthUserReader, writer AuthUserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user account keyed by personal id.
func (svc *AuthService) Register(ctx context.Context, personalID, password, nickname string) error {
	user, err := svc.reader.GetByPersonalID(ctx, personalID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "personalID", personalID)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Create(ctx, personalID, string(hashedPassword), nickname); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user by personal id and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, personalID, password string) (string, error) {
	user, err := svc.reader.GetByPersonalID(ctx, personalID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "personalID", personalID)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "personalID", personalID)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
