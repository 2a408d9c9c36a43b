package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/sbilibin2017/bigstack/internal/logger"
	"github.com/sbilibin2017/bigstack/internal/models"
	"github.com/sbilibin2017/bigstack/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrPersonAlreadyExists = errors.New("email already exists")
	ErrPersonDoesNotExist  = errors.New("person does not exist")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

// PersonReader defines read-only operations for persons.
type PersonReader interface {
	GetByEmail(ctx context.Context, email string) (*models.Person, error)
}

// PersonWriter defines write operations for persons.
type PersonWriter interface {
	Save(ctx context.Context, person *models.Person) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID primitive.ObjectID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader PersonReader
	writer PersonWriter
	jwt    JWTGenerator
	events KafkaWriter
}

// NewAuthService creates a new AuthService instance. events may be nil.
func NewAuthService(reader PersonReader, writer PersonWriter, jwt JWTGenerator, events KafkaWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		events: events,
	}
}

// Register creates a new person with a bcrypt-hashed password.
func (svc *AuthService) Register(ctx context.Context, reg models.Registration) (*models.Person, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = normalizeEmail(reg.Email)
	reg.Username = strings.TrimSpace(reg.Username)
	reg.ProfilePic = strings.TrimSpace(reg.ProfilePic)

	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, reg.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logger.Log.Errorw("failed to check person exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("person already exists", "email", reg.Email)
		return nil, ErrPersonAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	person := &models.Person{
		Name:       reg.Name,
		Email:      reg.Email,
		Password:   string(hashedPassword),
		Username:   reg.Username,
		ProfilePic: reg.ProfilePic,
		Date:       time.Now().UTC(),
	}
	if person.ProfilePic == "" {
		person.ProfilePic = models.DefaultProfilePic
	}

	if err := svc.writer.Save(ctx, person); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrPersonAlreadyExists
		}
		logger.Log.Errorw("failed to save person", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, models.EventPersonRegistered, person.ID, map[string]string{
		"name":  person.Name,
		"email": person.Email,
	})

	return person, nil
}

// Login authenticates a person and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	person, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Errorw("person does not exist", "email", email)
			return "", ErrPersonDoesNotExist
		}
		logger.Log.Errorw("failed to get person", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(person.Password), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, person.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(reg models.Registration) error {
	switch {
	case reg.Name == "":
		return invalidInput("name is required")
	case reg.Email == "":
		return invalidInput("email is required")
	case reg.Password == "":
		return invalidInput("password is required")
	case len(reg.Password) > 72:
		return invalidInput("password must be at most 72 bytes")
	}

	addr, err := mail.ParseAddress(reg.Email)
	if err != nil || addr.Address != reg.Email {
		return invalidInput("email is invalid")
	}
	return nil
}
