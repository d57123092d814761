package models

import "time"

// Trainer is a row in the trainers table. Trainers live in their own
// table, so username/email uniqueness is per role, not global.
type Trainer struct {
	ID              int64     `db:"id" json:"id"`
	FirstName       string    `db:"first_name" json:"first_name"`
	LastName        string    `db:"last_name" json:"last_name"`
	Gender          string    `db:"gender" json:"gender"`
	DateOfBirth     time.Time `db:"date_of_birth" json:"date_of_birth"`
	Username        string    `db:"username" json:"username"`
	Email           string    `db:"email" json:"email"`
	PasswordHash    string    `db:"password_hash" json:"-"`
	Specialty       string    `db:"specialty" json:"specialty"`
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
