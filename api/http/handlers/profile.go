package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/harizal/portfolio/api/http/presenter"
	"github.com/harizal/portfolio/pkg/profile"
)

type ProfileHandler struct {
	svc profile.UseCase
	log *zap.Logger
}

func NewProfileHandler(svc profile.UseCase, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: log}
}

// Get returns the public profile document.
// @Summary Get profile document
// @Description Creates the empty default document on first access.
// @Tags    profile
// @Produce json
// @Success 200 {object} profile.Document
// @Failure 429 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /get-data [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	doc, err := h.svc.Get(c.Context())
	if err != nil {
		h.log.Error("get profile", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return presenter.JSON(c, http.StatusOK, doc)
}

// Update replaces the whole profile document.
// @Summary Replace profile document
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body profile.Document true "complete document"
// @Security BearerAuth
// @Success 200 {object} presenter.Response
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /update-data [post]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	if _, err := h.svc.ReplaceJSON(c.Context(), c.Body()); err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		h.log.Error("update profile", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return presenter.OK(c, "Data updated successfully")
}
