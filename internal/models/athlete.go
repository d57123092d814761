package models

import "time"

// Athlete is a row in the athletes table. Performance metrics are
// nullable: trainers fill them in over time, signup leaves them empty.
type Athlete struct {
	ID             int64     `db:"id" json:"id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Gender         string    `db:"gender" json:"gender"`
	Age            int       `db:"age" json:"age"`
	DateOfBirth    time.Time `db:"date_of_birth" json:"date_of_birth"`
	Residence      string    `db:"residence" json:"residence"`
	Username       string    `db:"username" json:"username"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	BodyWeight     *float64  `db:"body_weight" json:"body_weight,omitempty"`
	BMR            *float64  `db:"bmr" json:"bmr,omitempty"`
	HydrationLevel *float64  `db:"hydration_level" json:"hydration_level,omitempty"`
	MuscleMass     *float64  `db:"muscle_mass" json:"muscle_mass,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// AthleteUpdate carries a partial update. Nil fields are left untouched
// by the store; non-nil fields overwrite, including explicit clears.
type AthleteUpdate struct {
	FirstName      *string  `json:"first_name"`
	LastName       *string  `json:"last_name"`
	Gender         *string  `json:"gender"`
	Age            *int     `json:"age"`
	Residence      *string  `json:"residence"`
	BodyWeight     *float64 `json:"body_weight"`
	BMR            *float64 `json:"bmr"`
	HydrationLevel *float64 `json:"hydration_level"`
	MuscleMass     *float64 `json:"muscle_mass"`
}

// Empty reports whether the update would touch no columns at all.
func (u AthleteUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Gender == nil &&
		u.Age == nil && u.Residence == nil && u.BodyWeight == nil &&
		u.BMR == nil && u.HydrationLevel == nil && u.MuscleMass == nil
}
