package jwt

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/harizal/portfolio/pkg/auth"
)

const (
	purposeSession   = "session"
	purposeChallenge = "otp"

	// DefaultChallengeTTL bounds how long an emailed code stays usable.
	DefaultChallengeTTL = 5 * time.Minute
)

// Manager signs and verifies HS256 tokens. It implements auth.TokenManager.
type Manager struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	challengeTTL time.Duration
	now          func() time.Time
}

func NewManager(secret, issuer string, ttl time.Duration) *Manager {
	return &Manager{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		challengeTTL: DefaultChallengeTTL,
		now:          time.Now,
	}
}

// WithClock replaces the time source used for issuing and verifying.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Claims includes the registered claims plus what the token is for.
type Claims struct {
	jwt.RegisteredClaims
	Purpose string `json:"purpose"`
	Code    string `json:"code,omitempty"`
}

func (m *Manager) Issue(ctx context.Context, c auth.Credential) (auth.Session, error) {
	now := m.now().UTC()
	exp := now.Add(m.ttl)
	token, err := m.sign(Claims{
		RegisteredClaims: m.registered(c.ID.String(), now, exp),
		Purpose:          purposeSession,
	})
	if err != nil {
		return auth.Session{}, err
	}
	return auth.Session{Token: token, ExpiresAt: exp}, nil
}

func (m *Manager) Verify(token string) (auth.Subject, error) {
	if token == "" {
		return auth.Subject{}, auth.ErrTokenMissing
	}
	var claims Claims
	if err := m.parse(token, &claims); err != nil {
		return auth.Subject{}, err
	}
	if claims.Purpose != purposeSession || claims.Subject == "" {
		return auth.Subject{}, auth.ErrTokenInvalid
	}
	return auth.Subject{ID: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (m *Manager) IssueChallenge(ctx context.Context, c auth.Credential, code string) (auth.Challenge, error) {
	now := m.now().UTC()
	exp := now.Add(m.challengeTTL)
	token, err := m.sign(Claims{
		RegisteredClaims: m.registered(c.Identifier, now, exp),
		Purpose:          purposeChallenge,
		Code:             m.codeMAC(c.Identifier, code),
	})
	if err != nil {
		return auth.Challenge{}, err
	}
	return auth.Challenge{Token: token, ExpiresAt: exp}, nil
}

func (m *Manager) VerifyChallenge(token, code string) (string, error) {
	var claims Claims
	if err := m.parse(token, &claims); err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return "", auth.ErrChallengeExpired
		}
		return "", err
	}
	if claims.Purpose != purposeChallenge || claims.Subject == "" {
		return "", auth.ErrTokenInvalid
	}
	want := m.codeMAC(claims.Subject, code)
	if !hmac.Equal([]byte(want), []byte(claims.Code)) {
		return "", auth.ErrInvalidCode
	}
	return claims.Subject, nil
}

func (m *Manager) registered(subject string, now, exp time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
}

func (m *Manager) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) parse(token string, claims *Claims) error {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return auth.ErrTokenExpired
	default:
		return auth.ErrTokenInvalid
	}
}

// codeMAC binds a one-time code to the identifier it was sent to.
func (m *Manager) codeMAC(identifier, code string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(purposeChallenge + ":" + identifier + ":" + code))
	return hex.EncodeToString(mac.Sum(nil))
}
