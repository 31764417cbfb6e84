package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"assessment-service/internal/models"
	"assessment-service/internal/service"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// StartSession creates a new candidate session against an active assessment.
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req service.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	session, err := h.Service.Start(c.Request.Context(), c.GetString(tenantKey), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session":   session,
		"next_step": "Call /next to get the first question",
	})
}

// GetSession returns the session's current state. The pending question's
// answer key never appears here.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.Service.Get(c.Request.Context(), c.GetString(tenantKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// NextQuestion generates the next question for the session.
func (h *SessionHandler) NextQuestion(c *gin.Context) {
	question, err := h.Service.NextQuestion(c.Request.Context(), c.GetString(tenantKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"question": question})
}

// SubmitAnswer grades the pending question and reports whether another
// question is available.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var req service.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	result, err := h.Service.Answer(c.Request.Context(), c.GetString(tenantKey), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitSession scores the session and returns the stored metrics.
func (h *SessionHandler) SubmitSession(c *gin.Context) {
	metrics, err := h.Service.Submit(c.Request.Context(), c.GetString(tenantKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": metrics})
}

// AbandonSession marks the session abandoned without scoring it.
func (h *SessionHandler) AbandonSession(c *gin.Context) {
	err := h.Service.Abandon(c.Request.Context(), c.GetString(tenantKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(models.StatusAbandoned)})
}

// GetSessionProgress summarizes how far the session has come: questions
// answered against the cap and the per-area difficulty levels.
func (h *SessionHandler) GetSessionProgress(c *gin.Context) {
	tenant := c.GetString(tenantKey)
	session, err := h.Service.Get(c.Request.Context(), tenant, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	assessment, err := h.Service.Assessment(c.Request.Context(), tenant, session.AssessmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	answeredByArea := make(map[string]int, len(assessment.Areas))
	for _, r := range session.Responses {
		answeredByArea[r.Area]++
	}
	areas := make([]gin.H, 0, len(assessment.Areas))
	for _, area := range assessment.Areas {
		areas = append(areas, gin.H{
			"area":         area.Name,
			"target_share": area.Percentage,
			"answered":     answeredByArea[area.Name],
			"difficulty":   session.Difficulties[area.Name],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":    session.ID,
		"status":        session.Status,
		"answered":      len(session.Responses),
		"max_questions": assessment.MaxQuestions,
		"areas":         areas,
		"started_at":    session.StartedAt,
	})
}

// HealthCheck reports service liveness.
func (h *SessionHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   "assessment-service",
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
