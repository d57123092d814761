package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/statsync/statsync/internal/models"
	"github.com/statsync/statsync/internal/password"
	"github.com/statsync/statsync/internal/repository"
	"github.com/statsync/statsync/internal/token"
)

var (
	ErrUserAlreadyExists  = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)

// AthleteSignup carries the athlete registration form. Metrics are not
// part of signup; trainers enter them later.
type AthleteSignup struct {
	FirstName       string
	LastName        string
	Gender          string
	Age             int
	DateOfBirth     time.Time
	Residence       string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// TrainerSignup carries the trainer registration form.
type TrainerSignup struct {
	FirstName       string
	LastName        string
	Gender          string
	DateOfBirth     time.Time
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Specialty       string
	ExperienceYears int
}

type AuthService interface {
	SignupAthlete(signup AthleteSignup) (*models.Athlete, error)
	SignupTrainer(signup TrainerSignup) (*models.Trainer, error)
	// Login verifies credentials against the role's table and returns a
	// signed token plus its expiration time. The identifier may be a
	// username or an email address.
	Login(role models.Role, identifier, plaintext string) (string, time.Time, error)
}

type authService struct {
	athletes repository.AthleteRepository
	trainers repository.TrainerRepository
	issuer   *token.Issuer
	logger   *zap.Logger
}

func NewAuthService(athletes repository.AthleteRepository, trainers repository.TrainerRepository, issuer *token.Issuer, logger *zap.Logger) AuthService {
	return &authService{
		athletes: athletes,
		trainers: trainers,
		issuer:   issuer,
		logger:   logger,
	}
}

func (s *authService) SignupAthlete(signup AthleteSignup) (*models.Athlete, error) {
	if err := validatePassword(signup.Password, signup.ConfirmPassword); err != nil {
		return nil, err
	}

	passwordHash, err := password.Hash(signup.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	athlete := &models.Athlete{
		FirstName:    signup.FirstName,
		LastName:     signup.LastName,
		Gender:       signup.Gender,
		Age:          signup.Age,
		DateOfBirth:  signup.DateOfBirth,
		Residence:    signup.Residence,
		Username:     signup.Username,
		Email:        signup.Email,
		PasswordHash: passwordHash,
	}

	if err := s.athletes.Create(athlete); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("Failed to create athlete", zap.Error(err))
		return nil, fmt.Errorf("failed to create athlete: %w", err)
	}

	s.logger.Info("Athlete registered", zap.String("username", athlete.Username))
	return athlete, nil
}

func (s *authService) SignupTrainer(signup TrainerSignup) (*models.Trainer, error) {
	if err := validatePassword(signup.Password, signup.ConfirmPassword); err != nil {
		return nil, err
	}

	passwordHash, err := password.Hash(signup.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	trainer := &models.Trainer{
		FirstName:       signup.FirstName,
		LastName:        signup.LastName,
		Gender:          signup.Gender,
		DateOfBirth:     signup.DateOfBirth,
		Username:        signup.Username,
		Email:           signup.Email,
		PasswordHash:    passwordHash,
		Specialty:       signup.Specialty,
		ExperienceYears: signup.ExperienceYears,
	}

	if err := s.trainers.Create(trainer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("Failed to create trainer", zap.Error(err))
		return nil, fmt.Errorf("failed to create trainer: %w", err)
	}

	s.logger.Info("Trainer registered", zap.String("username", trainer.Username))
	return trainer, nil
}

func (s *authService) Login(role models.Role, identifier, plaintext string) (string, time.Time, error) {
	var (
		subject string
		digest  string
	)

	switch role {
	case models.RoleAthlete:
		athlete, err := s.athletes.GetByIdentifier(identifier)
		if err != nil {
			return "", time.Time{}, s.loginLookupErr(err)
		}
		subject, digest = athlete.Username, athlete.PasswordHash
	case models.RoleTrainer:
		trainer, err := s.trainers.GetByIdentifier(identifier)
		if err != nil {
			return "", time.Time{}, s.loginLookupErr(err)
		}
		subject, digest = trainer.Username, trainer.PasswordHash
	default:
		return "", time.Time{}, ErrInvalidCredentials
	}

	if !password.Verify(plaintext, digest) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	tokenString, err := s.issuer.Issue(subject, role)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User logged in", zap.String("username", subject), zap.String("role", string(role)))
	return tokenString, time.Now().Add(s.issuer.TTL()), nil
}

// loginLookupErr folds a missing account into the same outcome as a
// wrong password so login does not reveal which identifiers exist.
func (s *authService) loginLookupErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidCredentials
	}
	s.logger.Error("Failed to look up user for login", zap.Error(err))
	return fmt.Errorf("failed to retrieve user: %w", err)
}

// validatePassword enforces the signup password policy: confirmation
// match, minimum 8 characters, at least one uppercase letter and one
// special character.
func validatePassword(plaintext, confirm string) error {
	if plaintext != confirm {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if len(plaintext) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	}
	hasUpper := false
	for _, r := range plaintext {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return fmt.Errorf("%w: password must contain at least one uppercase letter", ErrValidation)
	}
	if !strings.ContainsAny(plaintext, "@$!%*?&#^()-_+=") {
		return fmt.Errorf("%w: password must contain at least one special character", ErrValidation)
	}
	return nil
}
