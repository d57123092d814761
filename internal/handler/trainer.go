package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/statsync/statsync/internal/middleware"
	"github.com/statsync/statsync/internal/models"
	"github.com/statsync/statsync/internal/service"
)

// TrainerHandler serves the trainer-facing endpoints: trainers own data
// entry, so every athlete mutation lives here.
type TrainerHandler interface {
	Me(c *gin.Context)
	ListAthletes(c *gin.Context)
	GetAthlete(c *gin.Context)
	UpdateAthlete(c *gin.Context)
	DeleteAthlete(c *gin.Context)
	ExportAthleteStats(c *gin.Context)
}

type trainerHandler struct {
	profiles service.ProfileService
	log      *logrus.Logger
}

func NewTrainerHandler(profiles service.ProfileService, log *logrus.Logger) TrainerHandler {
	return &trainerHandler{profiles: profiles, log: log}
}

func (h *trainerHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentTrainer(c))
}

func (h *trainerHandler) ListAthletes(c *gin.Context) {
	athletes, err := h.profiles.ListAthletes()
	if err != nil {
		h.log.Errorf("Failed to list athletes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"athletes": athletes})
}

func (h *trainerHandler) GetAthlete(c *gin.Context) {
	id, ok := athleteID(c)
	if !ok {
		return
	}

	athlete, err := h.profiles.GetAthlete(id)
	if err != nil {
		h.athleteError(c, err)
		return
	}
	c.JSON(http.StatusOK, athlete)
}

// UpdateAthlete applies a partial update: fields absent from the body
// are left untouched, fields present overwrite.
func (h *trainerHandler) UpdateAthlete(c *gin.Context) {
	id, ok := athleteID(c)
	if !ok {
		return
	}

	var update models.AthleteUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	athlete, err := h.profiles.UpdateAthlete(id, update)
	if err != nil {
		h.athleteError(c, err)
		return
	}
	c.JSON(http.StatusOK, athlete)
}

func (h *trainerHandler) DeleteAthlete(c *gin.Context) {
	id, ok := athleteID(c)
	if !ok {
		return
	}

	if err := h.profiles.DeleteAthlete(id); err != nil {
		h.athleteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Athlete deleted"})
}

func (h *trainerHandler) ExportAthleteStats(c *gin.Context) {
	id, ok := athleteID(c)
	if !ok {
		return
	}

	athlete, err := h.profiles.GetAthlete(id)
	if err != nil {
		h.athleteError(c, err)
		return
	}
	writeStatsPDF(c, athlete, h.log)
}

func (h *trainerHandler) athleteError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "athlete not found"})
		return
	}
	h.log.Errorf("Athlete operation failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func athleteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid athlete id"})
		return 0, false
	}
	return id, true
}
