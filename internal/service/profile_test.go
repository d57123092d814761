package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/statsync/statsync/internal/models"
)

func seedAthlete(t *testing.T, athletes *mockAthleteRepository, username string) *models.Athlete {
	t.Helper()
	athlete := &models.Athlete{
		FirstName:    "Marta",
		LastName:     "Silva",
		Gender:       "female",
		Age:          24,
		DateOfBirth:  time.Date(2001, 5, 14, 0, 0, 0, 0, time.UTC),
		Residence:    "Lisbon",
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$argon2id$...",
	}
	require.NoError(t, athletes.Create(athlete))
	return athlete
}

func TestGetOwnAthlete(t *testing.T) {
	athletes := newMockAthleteRepository()
	svc := NewProfileService(athletes, zap.NewNop())

	a1 := seedAthlete(t, athletes, "marta")
	a2 := seedAthlete(t, athletes, "ines")

	got, err := svc.GetOwnAthlete(a1, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, a1.ID, got.ID)

	// Another athlete's record is out of scope regardless of whether
	// it exists.
	_, err = svc.GetOwnAthlete(a1, a2.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.GetOwnAthlete(a1, 999)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateAthletePartial(t *testing.T) {
	athletes := newMockAthleteRepository()
	svc := NewProfileService(athletes, zap.NewNop())

	athlete := seedAthlete(t, athletes, "marta")

	weight := 61.5
	updated, err := svc.UpdateAthlete(athlete.ID, models.AthleteUpdate{BodyWeight: &weight})
	require.NoError(t, err)

	// Only body_weight changed; everything else is untouched.
	require.NotNil(t, updated.BodyWeight)
	assert.Equal(t, 61.5, *updated.BodyWeight)
	assert.Equal(t, "Marta", updated.FirstName)
	assert.Equal(t, "Lisbon", updated.Residence)
	assert.Nil(t, updated.MuscleMass)
}

func TestUpdateAthleteNotFound(t *testing.T) {
	athletes := newMockAthleteRepository()
	svc := NewProfileService(athletes, zap.NewNop())

	weight := 61.5
	_, err := svc.UpdateAthlete(42, models.AthleteUpdate{BodyWeight: &weight})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDeleteAthlete(t *testing.T) {
	athletes := newMockAthleteRepository()
	svc := NewProfileService(athletes, zap.NewNop())

	athlete := seedAthlete(t, athletes, "marta")

	require.NoError(t, svc.DeleteAthlete(athlete.ID))

	_, err := svc.GetAthlete(athlete.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// Deleting again reports the record as gone.
	assert.ErrorIs(t, svc.DeleteAthlete(athlete.ID), ErrRecordNotFound)
}

func TestListAthletes(t *testing.T) {
	athletes := newMockAthleteRepository()
	svc := NewProfileService(athletes, zap.NewNop())

	seedAthlete(t, athletes, "marta")
	seedAthlete(t, athletes, "ines")

	all, err := svc.ListAthletes()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
