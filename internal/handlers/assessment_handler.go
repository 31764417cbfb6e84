package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-service/internal/models"
	"assessment-service/internal/service"
)

type AssessmentHandler struct {
	Service *service.AssessmentService
}

func NewAssessmentHandler(s *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{Service: s}
}

// CreateAssessment validates and stores a new assessment configuration.
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var a models.Assessment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	a.TenantID = c.GetString(tenantKey)

	if err := h.Service.Create(c.Request.Context(), &a); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GetAssessment returns one assessment by id.
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	a, err := h.Service.Get(c.Request.Context(), c.GetString(tenantKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListAssessments returns the tenant's assessments, optionally only active
// ones (?active=true).
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	assessments, err := h.Service.List(c.Request.Context(), c.GetString(tenantKey), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"assessments": assessments,
		"count":       len(assessments),
	})
}

// SetAssessmentActive flips the active flag, the one mutable field after
// creation.
func (h *AssessmentHandler) SetAssessmentActive(c *gin.Context) {
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.Service.SetActive(c.Request.Context(), c.GetString(tenantKey), c.Param("id"), *req.Active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "active": *req.Active})
}
