package service

import (
	"github.com/statsync/statsync/internal/models"
	"github.com/statsync/statsync/internal/repository"
)

// mockAthleteRepository is an in-memory AthleteRepository enforcing the
// same per-table uniqueness as the real schema.
type mockAthleteRepository struct {
	nextID   int64
	athletes map[int64]*models.Athlete
}

func newMockAthleteRepository() *mockAthleteRepository {
	return &mockAthleteRepository{nextID: 1, athletes: make(map[int64]*models.Athlete)}
}

func (r *mockAthleteRepository) Create(athlete *models.Athlete) error {
	for _, existing := range r.athletes {
		if existing.Username == athlete.Username || existing.Email == athlete.Email {
			return repository.ErrDuplicate
		}
	}
	athlete.ID = r.nextID
	r.nextID++
	copied := *athlete
	r.athletes[athlete.ID] = &copied
	return nil
}

func (r *mockAthleteRepository) GetByIdentifier(identifier string) (*models.Athlete, error) {
	for _, athlete := range r.athletes {
		if athlete.Username == identifier || athlete.Email == identifier {
			copied := *athlete
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *mockAthleteRepository) GetByUsername(username string) (*models.Athlete, error) {
	for _, athlete := range r.athletes {
		if athlete.Username == username {
			copied := *athlete
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *mockAthleteRepository) GetByID(id int64) (*models.Athlete, error) {
	athlete, ok := r.athletes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *athlete
	return &copied, nil
}

func (r *mockAthleteRepository) List() ([]models.Athlete, error) {
	athletes := []models.Athlete{}
	for id := int64(1); id < r.nextID; id++ {
		if athlete, ok := r.athletes[id]; ok {
			athletes = append(athletes, *athlete)
		}
	}
	return athletes, nil
}

func (r *mockAthleteRepository) Update(id int64, update models.AthleteUpdate) (*models.Athlete, error) {
	athlete, ok := r.athletes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.FirstName != nil {
		athlete.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		athlete.LastName = *update.LastName
	}
	if update.Gender != nil {
		athlete.Gender = *update.Gender
	}
	if update.Age != nil {
		athlete.Age = *update.Age
	}
	if update.Residence != nil {
		athlete.Residence = *update.Residence
	}
	if update.BodyWeight != nil {
		athlete.BodyWeight = update.BodyWeight
	}
	if update.BMR != nil {
		athlete.BMR = update.BMR
	}
	if update.HydrationLevel != nil {
		athlete.HydrationLevel = update.HydrationLevel
	}
	if update.MuscleMass != nil {
		athlete.MuscleMass = update.MuscleMass
	}
	copied := *athlete
	return &copied, nil
}

func (r *mockAthleteRepository) Delete(id int64) error {
	if _, ok := r.athletes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.athletes, id)
	return nil
}

// mockTrainerRepository is an in-memory TrainerRepository with its own
// uniqueness scope, independent of the athletes table.
type mockTrainerRepository struct {
	nextID   int64
	trainers map[int64]*models.Trainer
}

func newMockTrainerRepository() *mockTrainerRepository {
	return &mockTrainerRepository{nextID: 1, trainers: make(map[int64]*models.Trainer)}
}

func (r *mockTrainerRepository) Create(trainer *models.Trainer) error {
	for _, existing := range r.trainers {
		if existing.Username == trainer.Username || existing.Email == trainer.Email {
			return repository.ErrDuplicate
		}
	}
	trainer.ID = r.nextID
	r.nextID++
	copied := *trainer
	r.trainers[trainer.ID] = &copied
	return nil
}

func (r *mockTrainerRepository) GetByIdentifier(identifier string) (*models.Trainer, error) {
	for _, trainer := range r.trainers {
		if trainer.Username == identifier || trainer.Email == identifier {
			copied := *trainer
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *mockTrainerRepository) GetByUsername(username string) (*models.Trainer, error) {
	for _, trainer := range r.trainers {
		if trainer.Username == username {
			copied := *trainer
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}
