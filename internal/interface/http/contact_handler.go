package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/akmalhzn/portfolio-api/internal/application"
	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
	"github.com/akmalhzn/portfolio-api/pkg/response"
	"github.com/akmalhzn/portfolio-api/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied archived"`
}

// Submit POST /api/contact (public)
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	msg := &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.Svc.Submit(c.Request.Context(), msg); err != nil {
		fail(c, h.Logger, err, "contact.submit")
		return
	}
	response.Success(c, http.StatusCreated, msg, "message sent successfully", nil)
}

// List GET /api/contact (admin)
func (h *ContactHandler) List(c *gin.Context) {
	f := repo.MessageFilter{
		Status: entity.MessageStatus(c.Query("status")),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.Limit = n
		}
	}
	msgs, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		fail(c, h.Logger, err, "contact.list")
		return
	}
	response.Success(c, http.StatusOK, msgs, "contact messages", map[string]any{"count": len(msgs)})
}

// Get GET /api/contact/:id (admin)
func (h *ContactHandler) Get(c *gin.Context) {
	msg, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err, "contact.get")
		return
	}
	response.Success(c, http.StatusOK, msg, "contact message", nil)
}

// UpdateStatus PATCH /api/contact/:id/status (admin)
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid status", validation.ToDetails(err))
		return
	}
	msg, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), entity.MessageStatus(req.Status))
	if err != nil {
		fail(c, h.Logger, err, "contact.update_status")
		return
	}
	response.Success(c, http.StatusOK, msg, "status updated", nil)
}

// Delete DELETE /api/contact/:id (admin)
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, err, "contact.delete")
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "message deleted successfully", nil)
}
