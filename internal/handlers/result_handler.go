package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-service/internal/service"
)

type ResultHandler struct {
	Service *service.ResultService
}

func NewResultHandler(s *service.ResultService) *ResultHandler {
	return &ResultHandler{Service: s}
}

// GetResultBySession returns the metrics stored for one session.
func (h *ResultHandler) GetResultBySession(c *gin.Context) {
	metrics, err := h.Service.GetBySession(c.Request.Context(), c.GetString(tenantKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// GetResultsByAssessment lists every candidate result for one assessment.
func (h *ResultHandler) GetResultsByAssessment(c *gin.Context) {
	results, err := h.Service.ListByAssessment(c.Request.Context(), c.GetString(tenantKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}
