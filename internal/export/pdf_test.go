package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statsync/statsync/internal/models"
)

func sampleAthlete() *models.Athlete {
	weight := 61.5
	return &models.Athlete{
		ID:          7,
		FirstName:   "Marta",
		LastName:    "Silva",
		Gender:      "female",
		Age:         24,
		DateOfBirth: time.Date(2001, 5, 14, 0, 0, 0, 0, time.UTC),
		Residence:   "Lisbon",
		Username:    "marta",
		Email:       "marta@example.com",
		BodyWeight:  &weight,
	}
}

func TestRecordFlattensAthlete(t *testing.T) {
	fields := Record(sampleAthlete())

	byKey := map[string]string{}
	for _, field := range fields {
		byKey[field.Key] = field.Value
	}

	assert.Equal(t, "Marta", byKey["First name"])
	assert.Equal(t, "2001-05-14", byKey["Date of birth"])
	assert.Equal(t, "61.5", byKey["Body weight (kg)"])
	// Metrics never entered render as a dash.
	assert.Equal(t, "-", byKey["Muscle mass (kg)"])
}

func TestWritePDFProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleAthlete()))

	// A minimal sanity check on the output: PDF magic header.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
