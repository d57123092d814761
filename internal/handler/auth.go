package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/statsync/statsync/internal/models"
	"github.com/statsync/statsync/internal/service"
)

const dateLayout = "2006-01-02"

type AuthHandler interface {
	SignupAthlete(c *gin.Context)
	SignupTrainer(c *gin.Context)
	Login(role models.Role) gin.HandlerFunc
	Logout(role models.Role) gin.HandlerFunc
}

type authHandler struct {
	authService service.AuthService
	tokenTTL    time.Duration
	log         *logrus.Logger
}

// NewAuthHandler builds the signup/login/logout handlers. tokenTTL is
// also used as the cookie max-age so transport expiry mirrors the
// signed exp claim.
func NewAuthHandler(authService service.AuthService, tokenTTL time.Duration, log *logrus.Logger) AuthHandler {
	return &authHandler{authService: authService, tokenTTL: tokenTTL, log: log}
}

type AthleteSignupRequest struct {
	FirstName       string `form:"first_name" json:"first_name" binding:"required"`
	LastName        string `form:"last_name" json:"last_name" binding:"required"`
	Gender          string `form:"gender" json:"gender" binding:"required"`
	Age             int    `form:"age" json:"age" binding:"required"`
	DateOfBirth     string `form:"date_of_birth" json:"date_of_birth" binding:"required"`
	Residence       string `form:"residence" json:"residence" binding:"required"`
	Username        string `form:"username" json:"username" binding:"required"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required"`
}

type TrainerSignupRequest struct {
	FirstName       string `form:"first_name" json:"first_name" binding:"required"`
	LastName        string `form:"last_name" json:"last_name" binding:"required"`
	Gender          string `form:"gender" json:"gender" binding:"required"`
	DateOfBirth     string `form:"date_of_birth" json:"date_of_birth" binding:"required"`
	Username        string `form:"username" json:"username" binding:"required"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required"`
	Specialty       string `form:"specialty" json:"specialty"`
	ExperienceYears int    `form:"experience_years" json:"experience_years"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (r LoginRequest) identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

func (h *authHandler) SignupAthlete(c *gin.Context) {
	var req AthleteSignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
		return
	}

	athlete, err := h.authService.SignupAthlete(service.AthleteSignup{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Gender:          req.Gender,
		Age:             req.Age,
		DateOfBirth:     dob,
		Residence:       req.Residence,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.signupError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Athlete registered successfully",
		"id":       athlete.ID,
		"username": athlete.Username,
	})
}

func (h *authHandler) SignupTrainer(c *gin.Context) {
	var req TrainerSignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
		return
	}

	trainer, err := h.authService.SignupTrainer(service.TrainerSignup{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Gender:          req.Gender,
		DateOfBirth:     dob,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Specialty:       req.Specialty,
		ExperienceYears: req.ExperienceYears,
	})
	if err != nil {
		h.signupError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Trainer registered successfully",
		"id":       trainer.ID,
		"username": trainer.Username,
	})
}

func (h *authHandler) signupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Errorf("Failed to sign up user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
	}
}

// Login returns the login handler for one role. Success plants the
// token in the role's cookie slot and redirects to the role's landing
// page; the cookie expires together with the token.
func (h *authHandler) Login(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.identifier() == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username or email required"})
			return
		}

		tokenString, _, err := h.authService.Login(role, req.identifier(), req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			h.log.Errorf("Failed to log in user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
			return
		}

		h.setTokenCookie(c, role, tokenString, int(h.tokenTTL.Seconds()))
		c.Redirect(http.StatusFound, role.LandingPath())
	}
}

// Logout clears the role's cookie slot. Tokens are stateless, so this
// is all logout does: an already-issued token stays valid until expiry.
func (h *authHandler) Logout(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.setTokenCookie(c, role, "", -1)
		c.Redirect(http.StatusFound, "/")
	}
}

func (h *authHandler) setTokenCookie(c *gin.Context, role models.Role, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(role.CookieName(), value, maxAge, "/", "", true, true)
}
