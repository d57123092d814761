package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/statsync/statsync/internal/models"
	"github.com/statsync/statsync/internal/repository"
)

// ErrUnauthorized means the caller is authenticated but acting outside
// their permitted scope, e.g. an athlete reading another athlete's record.
var ErrUnauthorized = errors.New("not authorized to access this record")

// ErrRecordNotFound is the service-level view of a missing record.
var ErrRecordNotFound = errors.New("record not found")

// ProfileService applies the data-ownership rules: athletes see only
// themselves; trainers own data entry and may read, edit and delete any
// athlete. Role authority itself is established by the access guard;
// this layer enforces the per-record rules within a role.
type ProfileService interface {
	GetOwnAthlete(requester *models.Athlete, id int64) (*models.Athlete, error)
	ListAthletes() ([]models.Athlete, error)
	GetAthlete(id int64) (*models.Athlete, error)
	UpdateAthlete(id int64, update models.AthleteUpdate) (*models.Athlete, error)
	DeleteAthlete(id int64) error
}

type profileService struct {
	athletes repository.AthleteRepository
	logger   *zap.Logger
}

func NewProfileService(athletes repository.AthleteRepository, logger *zap.Logger) ProfileService {
	return &profileService{athletes: athletes, logger: logger}
}

// GetOwnAthlete returns the record only when it belongs to the
// requesting athlete; any other id is a scope violation, not a lookup.
func (s *profileService) GetOwnAthlete(requester *models.Athlete, id int64) (*models.Athlete, error) {
	if requester.ID != id {
		return nil, ErrUnauthorized
	}
	return s.GetAthlete(id)
}

func (s *profileService) ListAthletes() ([]models.Athlete, error) {
	athletes, err := s.athletes.List()
	if err != nil {
		s.logger.Error("Failed to list athletes", zap.Error(err))
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	return athletes, nil
}

func (s *profileService) GetAthlete(id int64) (*models.Athlete, error) {
	athlete, err := s.athletes.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		s.logger.Error("Failed to get athlete", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get athlete: %w", err)
	}
	return athlete, nil
}

func (s *profileService) UpdateAthlete(id int64, update models.AthleteUpdate) (*models.Athlete, error) {
	athlete, err := s.athletes.Update(id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		s.logger.Error("Failed to update athlete", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update athlete: %w", err)
	}
	s.logger.Info("Athlete updated", zap.Int64("id", id))
	return athlete, nil
}

// DeleteAthlete removes the record immediately; there is no soft delete.
// Any still-unexpired token held by the athlete keeps verifying, but the
// guard resolves it to a missing record from now on.
func (s *profileService) DeleteAthlete(id int64) error {
	if err := s.athletes.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecordNotFound
		}
		s.logger.Error("Failed to delete athlete", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete athlete: %w", err)
	}
	s.logger.Info("Athlete deleted", zap.Int64("id", id))
	return nil
}
