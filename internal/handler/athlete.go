package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/statsync/statsync/internal/export"
	"github.com/statsync/statsync/internal/middleware"
	"github.com/statsync/statsync/internal/models"
	"github.com/statsync/statsync/internal/service"
)

// AthleteHandler serves the athlete-facing endpoints. Athletes are
// read-only consumers of their own record; all mutation happens on the
// trainer side.
type AthleteHandler interface {
	Me(c *gin.Context)
	GetByID(c *gin.Context)
	ExportOwnStats(c *gin.Context)
}

type athleteHandler struct {
	profiles service.ProfileService
	log      *logrus.Logger
}

func NewAthleteHandler(profiles service.ProfileService, log *logrus.Logger) AthleteHandler {
	return &athleteHandler{profiles: profiles, log: log}
}

func (h *athleteHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentAthlete(c))
}

func (h *athleteHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid athlete id"})
		return
	}

	athlete, err := h.profiles.GetOwnAthlete(middleware.CurrentAthlete(c), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "athlete not found"})
		default:
			h.log.Errorf("Failed to get athlete: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, athlete)
}

func (h *athleteHandler) ExportOwnStats(c *gin.Context) {
	writeStatsPDF(c, middleware.CurrentAthlete(c), h.log)
}

// writeStatsPDF streams the athlete's statistics sheet. Shared between
// the athlete self-export and the trainer export.
func writeStatsPDF(c *gin.Context, athlete *models.Athlete, log *logrus.Logger) {
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("athlete_%d_stats.pdf", athlete.ID)))

	if err := export.WritePDF(c.Writer, athlete); err != nil {
		log.Errorf("Failed to export athlete stats: %v", err)
		c.Status(http.StatusInternalServerError)
	}
}
