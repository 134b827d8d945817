package handlers

import (
	"net/http"

	"luxride/models"
	"luxride/services/contact"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler exposes the contact inquiry endpoint.
type ContactHandler struct {
	Service contact.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// CreateContactHandler handles POST /api/contact.
func (h *ContactHandler) CreateContactHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid contact request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreateContact(c.Request.Context(), input)
	if err != nil {
		logger.Error("Failed to record contact submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit contact form"})
		return
	}
	c.JSON(http.StatusCreated, created)
}
