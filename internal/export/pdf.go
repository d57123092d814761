// Package export turns an athlete record into a flat key/value record
// and renders it to PDF. The PDF layout is deliberately dumb: one line
// per field, rendered by gofpdf. Everything interesting happens in the
// flattening; the renderer is an opaque consumer.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/statsync/statsync/internal/models"
)

// Field is one labelled value of the flattened record.
type Field struct {
	Key   string
	Value string
}

// Record flattens an athlete into ordered key/value pairs. Metrics a
// trainer has not entered yet are rendered as a dash.
func Record(athlete *models.Athlete) []Field {
	metric := func(v *float64) string {
		if v == nil {
			return "-"
		}
		return strconv.FormatFloat(*v, 'f', 1, 64)
	}

	return []Field{
		{"First name", athlete.FirstName},
		{"Last name", athlete.LastName},
		{"Gender", athlete.Gender},
		{"Age", strconv.Itoa(athlete.Age)},
		{"Date of birth", athlete.DateOfBirth.Format("2006-01-02")},
		{"Residence", athlete.Residence},
		{"Username", athlete.Username},
		{"Email", athlete.Email},
		{"Body weight (kg)", metric(athlete.BodyWeight)},
		{"BMR (kcal)", metric(athlete.BMR)},
		{"Hydration level (%)", metric(athlete.HydrationLevel)},
		{"Muscle mass (kg)", metric(athlete.MuscleMass)},
	}
}

// WritePDF renders the athlete's statistics sheet to w.
func WritePDF(w io.Writer, athlete *models.Athlete) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Athlete statistics: %s %s", athlete.FirstName, athlete.LastName))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	for _, field := range Record(athlete) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 8, field.Key, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, field.Value, "", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}
