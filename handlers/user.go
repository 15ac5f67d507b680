package handlers

import (
	"errors"
	"net/http"

	"fieldbook/models"
	"fieldbook/services/user"
	"fieldbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the identity directory over HTTP.
type UserHandler struct {
	Svc user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

func respondUserError(c *gin.Context, err error) {
	var notFound *user.NotFoundError
	var duplicate *user.DuplicateEmailError
	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.As(err, &duplicate):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to process user", err.Error())
	}
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	logger := getLogger(c)

	var in user.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		logger.Warn("User creation rejected", zap.Error(err))
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		respondUserError(c, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUser handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondUserError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
