package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ourstory/internal/application"
	"ourstory/internal/domain/entity"
	"ourstory/pkg/response"
	"ourstory/pkg/validation"
)

// DiaryHandler is the request side of the diary access gateway. Every
// route re-verifies the profile password; the client's "unlocked" state
// is convenience only.
type DiaryHandler struct {
	Svc    *application.DiaryService
	Logger *logrus.Logger
}

func NewDiaryHandler(svc *application.DiaryService, logger *logrus.Logger) *DiaryHandler {
	return &DiaryHandler{Svc: svc, Logger: logger}
}

type createEntryRequest struct {
	Password string `json:"password" binding:"required"`
	Title    string `json:"title" binding:"required,notblank"`
	Date     string `json:"date" binding:"required,notblank"`
	Body     string `json:"body" binding:"required,notblank"`
}

type updateEntryRequest struct {
	Password string            `json:"password" binding:"required"`
	ID       string            `json:"id" binding:"required"`
	Updates  entity.EntryPatch `json:"updates"`
}

type deleteEntryRequest struct {
	Password string `json:"password" binding:"required"`
	ID       string `json:"id" binding:"required"`
}

// List returns the profile's entries newest-first. The password rides in
// the query string because GET carries no body.
func (h *DiaryHandler) List(c *gin.Context) {
	password := c.Query("password")
	if password == "" {
		response.Error(c, http.StatusBadRequest, "Password required.")
		return
	}

	entries, err := h.Svc.List(c.Request.Context(), c.Param("profile"), password)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.Data(c, gin.H{"entries": entries})
}

func (h *DiaryHandler) Create(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if h.Logger != nil {
			h.Logger.WithField("details", validation.ToDetails(err)).Debug("rejected entry payload")
		}
		response.Error(c, http.StatusBadRequest, "password, title, date, body are required.")
		return
	}

	e, err := h.Svc.Create(c.Request.Context(), c.Param("profile"), req.Password, req.Title, req.Date, req.Body)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.CreatedID(c, e.ID)
}

func (h *DiaryHandler) Update(c *gin.Context) {
	var req updateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Updates.IsEmpty() {
		response.Error(c, http.StatusBadRequest, "password, id and updates are required.")
		return
	}

	if err := h.Svc.Update(c.Request.Context(), c.Param("profile"), req.Password, req.ID, req.Updates); err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.OK(c)
}

func (h *DiaryHandler) Delete(c *gin.Context) {
	var req deleteEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "password and id are required.")
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), c.Param("profile"), req.Password, req.ID); err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.OK(c)
}
