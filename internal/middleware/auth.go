package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/statsync/statsync/internal/models"
	"github.com/statsync/statsync/internal/repository"
	"github.com/statsync/statsync/internal/token"
)

// Context keys set by the guard on successful authentication.
const (
	ContextClaims  = "claims"
	ContextAthlete = "currentAthlete"
	ContextTrainer = "currentTrainer"
)

// credentialsMessage is the single externally visible message for every
// authentication failure. Missing cookie, bad signature, expiry and
// role mismatch must be indistinguishable to the caller.
const credentialsMessage = "could not validate credentials"

// UserResolver resolves a verified token subject to a concrete record
// for one role and stores it in the gin context.
type UserResolver interface {
	Resolve(c *gin.Context, subject string) error
}

// AthleteResolver loads the athlete record for a token subject.
type AthleteResolver struct {
	Athletes repository.AthleteRepository
}

func (r AthleteResolver) Resolve(c *gin.Context, subject string) error {
	athlete, err := r.Athletes.GetByUsername(subject)
	if err != nil {
		return err
	}
	c.Set(ContextAthlete, athlete)
	return nil
}

// TrainerResolver loads the trainer record for a token subject.
type TrainerResolver struct {
	Trainers repository.TrainerRepository
}

func (r TrainerResolver) Resolve(c *gin.Context, subject string) error {
	trainer, err := r.Trainers.GetByUsername(subject)
	if err != nil {
		return err
	}
	c.Set(ContextTrainer, trainer)
	return nil
}

// RequireRole creates the access guard for one role. The same algorithm
// serves both roles; only the cookie slot and the resolver differ.
//
// Steps: read the role-named cookie, verify the token, check the role
// claim against the required role, then resolve the subject to a live
// record. The first three failures are all 401 with the same body; a
// valid token for a since-deleted account is 404.
func RequireRole(required models.Role, issuer *token.Issuer, resolver UserResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(required.CookieName())
		if err != nil || tokenString == "" {
			unauthenticated(c)
			return
		}

		claims, err := issuer.Verify(tokenString)
		if err != nil {
			unauthenticated(c)
			return
		}

		// A valid token of the other role gets the same generic 401;
		// answering 403 here would reveal that such a token exists.
		if claims.Role != required {
			unauthenticated(c)
			return
		}

		if err := resolver.Resolve(c, claims.Subject); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				c.Abort()
				return
			}
			logger.Error("Failed to resolve authenticated user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			c.Abort()
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

func unauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": credentialsMessage})
	c.Abort()
}

// CurrentAthlete returns the athlete record placed by the athlete guard.
func CurrentAthlete(c *gin.Context) *models.Athlete {
	return c.MustGet(ContextAthlete).(*models.Athlete)
}

// CurrentTrainer returns the trainer record placed by the trainer guard.
func CurrentTrainer(c *gin.Context) *models.Trainer {
	return c.MustGet(ContextTrainer).(*models.Trainer)
}
