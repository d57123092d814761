// Package token issues and verifies the signed session tokens that
// stand in for server-side sessions. Validity is purely a function of
// signature and expiry; there is no revocation list.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/statsync/statsync/internal/models"
)

// ErrInvalidToken covers every verification failure: bad signature,
// expired, missing claims, wrong signing method. Callers must not be
// able to tell the sub-cases apart, so only one sentinel is exported.
var ErrInvalidToken = errors.New("invalid token")

// Config is the process-wide signing configuration, loaded once at
// startup and injected. The key is never rotated at runtime.
type Config struct {
	Secret    []byte
	Algorithm string
	TTL       time.Duration
}

type Issuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer builds an Issuer from the given config. Only HMAC signing
// methods are accepted.
func NewIssuer(cfg Config) (*Issuer, error) {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}
	if len(cfg.Secret) == 0 {
		return nil, errors.New("signing secret must not be empty")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Issuer{
		secret: cfg.Secret,
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// TTL returns the lifetime stamped into issued tokens. The transport
// cookie's max-age is set from the same value.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token asserting (subject, role) valid for the
// configured TTL from now.
func (i *Issuer) Issue(subject string, role models.Role) (string, error) {
	now := i.now()
	claims := &models.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	tokenString, err := jwt.NewWithClaims(i.method, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Every failure mode comes back as ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	// Expiry is validated by the parser, but sub and role are ours to
	// require: a signed token without them is malformed.
	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
