package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/harizal/portfolio/api/http/presenter"
	"github.com/harizal/portfolio/pkg/auth"
)

var otpPattern = regexp.MustCompile(`^\d{6}$`)

type AuthHandler struct {
	useCase auth.AuthUseCase
	otpMode bool
	log     *zap.Logger
}

// NewAuthHandler serves /login and /verify. With otpMode the login step
// mails a one-time code instead of checking a secret.
func NewAuthHandler(useCase auth.AuthUseCase, otpMode bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, otpMode: otpMode, log: log}
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
	// Username is accepted as an alias of Identifier.
	Username string `json:"username,omitempty"`
}

type loginResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Challenge string     `json:"challenge,omitempty"`
}

// Login checks the administrator's credentials.
// @Summary Admin login
// @Description Password mode returns a session token. One-time-code mode mails a code and returns a challenge for /verify.
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} loginResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Router  /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" {
		identifier = strings.TrimSpace(req.Username)
	}
	if identifier == "" {
		return presenter.Error(c, http.StatusBadRequest, "identifier is required")
	}

	if h.otpMode {
		ch, err := h.useCase.StartChallenge(c.Context(), identifier)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
			}
			h.log.Error("start login challenge", zap.Error(err))
			return presenter.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return presenter.JSON(c, http.StatusOK, loginResponse{
			Success:   true,
			Message:   "OTP sent to email",
			Challenge: ch.Token,
			ExpiresAt: &ch.ExpiresAt,
		})
	}

	if req.Secret == "" {
		return presenter.Error(c, http.StatusBadRequest, "identifier and secret are required")
	}
	sess, err := h.useCase.Login(c.Context(), identifier, req.Secret)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		h.log.Error("login", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return presenter.JSON(c, http.StatusOK, loginResponse{
		Success:   true,
		Message:   "login successful",
		Token:     sess.Token,
		ExpiresAt: &sess.ExpiresAt,
	})
}

type verifyRequest struct {
	Challenge string `json:"challenge"`
	OTP       string `json:"otp"`
}

// Verify exchanges a mailed one-time code for a session token.
// @Summary Verify one-time code
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body verifyRequest true "challenge and code"
// @Success 200 {object} loginResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /verify [post]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	if !h.otpMode {
		return presenter.Error(c, http.StatusNotFound, "one-time code login is disabled")
	}
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	code := strings.TrimSpace(req.OTP)
	if !otpPattern.MatchString(code) {
		return presenter.Error(c, http.StatusBadRequest, "invalid OTP format")
	}
	sess, err := h.useCase.CompleteChallenge(c.Context(), req.Challenge, code)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCode):
			return presenter.Error(c, http.StatusUnauthorized, "invalid OTP")
		case errors.Is(err, auth.ErrChallengeExpired):
			return presenter.Error(c, http.StatusBadRequest, "OTP expired, please login again")
		case errors.Is(err, auth.ErrTokenMissing), errors.Is(err, auth.ErrTokenInvalid):
			return presenter.Error(c, http.StatusBadRequest, "no valid login challenge, please login first")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		h.log.Error("verify one-time code", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return presenter.JSON(c, http.StatusOK, loginResponse{
		Success:   true,
		Message:   "OTP verified",
		Token:     sess.Token,
		ExpiresAt: &sess.ExpiresAt,
	})
}
