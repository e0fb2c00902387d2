package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/harizal/portfolio/api/http/presenter"
	"github.com/harizal/portfolio/pkg/editor"
	"github.com/harizal/portfolio/pkg/profile"
)

// requiredSections must be present in a submitted form, mirroring the
// shape check of /update-data.
var requiredSections = []string{"personalInfo", "workExperience"}

// EditorHandler serves the admin form built from the profile document and
// accepts edited forms back.
type EditorHandler struct {
	svc profile.UseCase
	log *zap.Logger
}

func NewEditorHandler(svc profile.UseCase, log *zap.Logger) *EditorHandler {
	return &EditorHandler{svc: svc, log: log}
}

type saveFormResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    profile.Document `json:"data"`
}

// Form returns the editable form for the stored document.
// @Summary Get admin form
// @Tags    admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} editor.Form
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/form [get]
func (h *EditorHandler) Form(c *fiber.Ctx) error {
	doc, err := h.svc.Get(c.Context())
	if err != nil {
		h.log.Error("load profile for form", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return presenter.JSON(c, http.StatusOK, editor.Build(doc))
}

// Save parses an edited form and replaces the stored document with it.
// @Summary Save admin form
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   input body editor.Form true "edited form"
// @Security BearerAuth
// @Success 200 {object} saveFormResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/form [post]
func (h *EditorHandler) Save(c *fiber.Ctx) error {
	var form editor.Form
	if err := c.BodyParser(&form); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	for _, path := range requiredSections {
		if _, ok := form.Section(path); !ok {
			return presenter.Error(c, http.StatusBadRequest, "form is missing section "+path)
		}
	}
	doc, err := h.svc.Replace(c.Context(), editor.Parse(form))
	if err != nil {
		h.log.Error("save profile form", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return presenter.JSON(c, http.StatusOK, saveFormResponse{
		Success: true,
		Message: "Data updated successfully",
		Data:    doc,
	})
}
