package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/statsync/statsync/internal/models"
)

const athleteColumns = `id, first_name, last_name, gender, age, date_of_birth, residence,
	username, email, password_hash, body_weight, bmr, hydration_level, muscle_mass, created_at`

type AthleteRepository interface {
	Create(athlete *models.Athlete) error
	GetByIdentifier(identifier string) (*models.Athlete, error)
	GetByUsername(username string) (*models.Athlete, error)
	GetByID(id int64) (*models.Athlete, error)
	List() ([]models.Athlete, error)
	Update(id int64, update models.AthleteUpdate) (*models.Athlete, error)
	Delete(id int64) error
}

type athleteRepository struct {
	db *sqlx.DB
}

func NewAthleteRepository(db *sqlx.DB) AthleteRepository {
	return &athleteRepository{db: db}
}

func (r *athleteRepository) Create(athlete *models.Athlete) error {
	query := `INSERT INTO athletes (first_name, last_name, gender, age, date_of_birth, residence,
		username, email, password_hash, body_weight, bmr, hydration_level, muscle_mass)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`
	err := r.db.QueryRowx(query,
		athlete.FirstName, athlete.LastName, athlete.Gender, athlete.Age,
		athlete.DateOfBirth, athlete.Residence, athlete.Username, athlete.Email,
		athlete.PasswordHash, athlete.BodyWeight, athlete.BMR,
		athlete.HydrationLevel, athlete.MuscleMass,
	).Scan(&athlete.ID, &athlete.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// GetByIdentifier looks an athlete up by username or email in one
// query; per-table uniqueness guarantees at most one match.
func (r *athleteRepository) GetByIdentifier(identifier string) (*models.Athlete, error) {
	var athlete models.Athlete
	query := fmt.Sprintf(`SELECT %s FROM athletes WHERE username = $1 OR email = $1`, athleteColumns)
	if err := r.db.Get(&athlete, query, identifier); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &athlete, nil
}

func (r *athleteRepository) GetByUsername(username string) (*models.Athlete, error) {
	var athlete models.Athlete
	query := fmt.Sprintf(`SELECT %s FROM athletes WHERE username = $1`, athleteColumns)
	if err := r.db.Get(&athlete, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &athlete, nil
}

func (r *athleteRepository) GetByID(id int64) (*models.Athlete, error) {
	var athlete models.Athlete
	query := fmt.Sprintf(`SELECT %s FROM athletes WHERE id = $1`, athleteColumns)
	if err := r.db.Get(&athlete, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &athlete, nil
}

func (r *athleteRepository) List() ([]models.Athlete, error) {
	athletes := []models.Athlete{}
	query := fmt.Sprintf(`SELECT %s FROM athletes ORDER BY id`, athleteColumns)
	if err := r.db.Select(&athletes, query); err != nil {
		return nil, err
	}
	return athletes, nil
}

// Update applies only the fields present in the partial update; absent
// fields keep their current values.
func (r *athleteRepository) Update(id int64, update models.AthleteUpdate) (*models.Athlete, error) {
	if update.Empty() {
		return r.GetByID(id)
	}

	setClauses := []string{}
	args := []interface{}{}
	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.FirstName != nil {
		addSet("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		addSet("last_name", *update.LastName)
	}
	if update.Gender != nil {
		addSet("gender", *update.Gender)
	}
	if update.Age != nil {
		addSet("age", *update.Age)
	}
	if update.Residence != nil {
		addSet("residence", *update.Residence)
	}
	if update.BodyWeight != nil {
		addSet("body_weight", *update.BodyWeight)
	}
	if update.BMR != nil {
		addSet("bmr", *update.BMR)
	}
	if update.HydrationLevel != nil {
		addSet("hydration_level", *update.HydrationLevel)
	}
	if update.MuscleMass != nil {
		addSet("muscle_mass", *update.MuscleMass)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE athletes SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), len(args), athleteColumns)

	var athlete models.Athlete
	if err := r.db.QueryRowx(query, args...).StructScan(&athlete); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &athlete, nil
}

func (r *athleteRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM athletes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
