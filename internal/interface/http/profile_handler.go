package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ourstory/internal/application"
	"ourstory/pkg/response"
	"ourstory/pkg/validation"
)

// ProfileHandler exposes the profile directory: an unauthenticated name
// listing plus password-gated create and delete.
type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type profileRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// List responds with all profile names in creation order. Names are
// public; nothing gated lives in this payload.
func (h *ProfileHandler) List(c *gin.Context) {
	names, err := h.Svc.List(c.Request.Context())
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.Data(c, gin.H{"profiles": names})
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if h.Logger != nil {
			h.Logger.WithField("details", validation.ToDetails(err)).Debug("rejected profile payload")
		}
		response.Error(c, http.StatusBadRequest, "Name and password required.")
		return
	}

	if err := h.Svc.Create(c.Request.Context(), req.Name, req.Password); err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.OK(c)
}

// Delete removes a profile and its diary. The password is re-entered and
// re-verified here; there is no session to lean on.
func (h *ProfileHandler) Delete(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Name and password required.")
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), req.Name, req.Password); err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.OK(c)
}
