package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harizal/portfolio/api/http/presenter"
	"github.com/harizal/portfolio/pkg/contact"
)

type ContactHandler struct {
	svc contact.UseCase
	log *zap.Logger
}

func NewContactHandler(svc contact.UseCase, log *zap.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: log}
}

// Submit stores a visitor's contact request.
// @Summary Submit contact request
// @Tags    contact
// @Accept  json
// @Produce json
// @Param   input body contact.Input true "contact request"
// @Success 201 {object} presenter.Response
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /contact-request [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var in contact.Input
	if err := c.BodyParser(&in); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if _, err := h.svc.Submit(c.Context(), in); err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Message)
		}
		h.log.Error("submit contact request", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return presenter.JSON(c, http.StatusCreated, presenter.Response{
		Success: true,
		Message: "Your request has been saved. Thank you!",
	})
}

// List returns contact requests, newest first.
// @Summary List contact requests
// @Tags    contact
// @Produce json
// @Param   limit  query int false "page size (1..200)"
// @Param   offset query int false "items to skip"
// @Security BearerAuth
// @Success 200 {array} contact.Request
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /get-requests [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.svc.List(c.Context(), limit, offset)
	if err != nil {
		h.log.Error("list contact requests", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Delete removes one contact request.
// @Summary Delete contact request
// @Tags    contact
// @Produce json
// @Param   id path string true "request ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} presenter.Response
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /delete-request/{id} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "request not found")
		}
		h.log.Error("delete contact request", zap.String("id", id.String()), zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return presenter.OK(c, "Request deleted")
}
