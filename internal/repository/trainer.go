package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/statsync/statsync/internal/models"
)

const trainerColumns = `id, first_name, last_name, gender, date_of_birth,
	username, email, password_hash, specialty, experience_years, created_at`

type TrainerRepository interface {
	Create(trainer *models.Trainer) error
	GetByIdentifier(identifier string) (*models.Trainer, error)
	GetByUsername(username string) (*models.Trainer, error)
}

type trainerRepository struct {
	db *sqlx.DB
}

func NewTrainerRepository(db *sqlx.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) Create(trainer *models.Trainer) error {
	query := `INSERT INTO trainers (first_name, last_name, gender, date_of_birth,
		username, email, password_hash, specialty, experience_years)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	err := r.db.QueryRowx(query,
		trainer.FirstName, trainer.LastName, trainer.Gender, trainer.DateOfBirth,
		trainer.Username, trainer.Email, trainer.PasswordHash,
		trainer.Specialty, trainer.ExperienceYears,
	).Scan(&trainer.ID, &trainer.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *trainerRepository) GetByIdentifier(identifier string) (*models.Trainer, error) {
	var trainer models.Trainer
	query := fmt.Sprintf(`SELECT %s FROM trainers WHERE username = $1 OR email = $1`, trainerColumns)
	if err := r.db.Get(&trainer, query, identifier); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) GetByUsername(username string) (*models.Trainer, error) {
	var trainer models.Trainer
	query := fmt.Sprintf(`SELECT %s FROM trainers WHERE username = $1`, trainerColumns)
	if err := r.db.Get(&trainer, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}
