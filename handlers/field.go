package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fieldbook/models"
	"fieldbook/services/field"
	"fieldbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FieldHandler exposes the facility directory over HTTP.
type FieldHandler struct {
	Svc field.FieldService
}

// NewFieldHandler creates a FieldHandler.
func NewFieldHandler(svc field.FieldService) *FieldHandler {
	return &FieldHandler{Svc: svc}
}

func respondFieldError(c *gin.Context, err error) {
	var notFound *field.NotFoundError
	var duplicate *field.DuplicateNameError
	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.As(err, &duplicate):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to process field", err.Error())
	}
}

// CreateField handles POST /api/fields.
func (h *FieldHandler) CreateField(c *gin.Context) {
	logger := getLogger(c)

	var in field.CreateFieldInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	f, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		logger.Warn("Field creation rejected", zap.Error(err))
		respondFieldError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// ListFields handles GET /api/fields.
func (h *FieldHandler) ListFields(c *gin.Context) {
	q := models.FieldQuery{
		SortedBy:        c.Query("sortedBy"),
		SortedDirection: c.Query("sortedDirection"),
		ComplexID:       c.Query("complexId"),
		Status:          c.Query("status"),
		Type:            c.Query("type"),
		Search:          c.Query("search"),
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		q.Limit = v
	}
	q.Normalize()

	fields, err := h.Svc.List(c.Request.Context(), q)
	if err != nil {
		respondFieldError(c, err)
		return
	}
	if fields == nil {
		fields = []models.Field{}
	}
	c.JSON(http.StatusOK, fields)
}

// GetField handles GET /api/fields/:id.
func (h *FieldHandler) GetField(c *gin.Context) {
	f, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondFieldError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// UpdateField handles PATCH /api/fields/:id.
func (h *FieldHandler) UpdateField(c *gin.Context) {
	var in field.UpdateFieldInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	f, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondFieldError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// DeleteField handles DELETE /api/fields/:id.
func (h *FieldHandler) DeleteField(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondFieldError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
