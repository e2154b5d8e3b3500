package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brain-tutor/internal/service"
)

// AssessmentHandler expone el registro y consulta de evaluaciones.
type AssessmentHandler struct {
	logger      *zap.Logger
	assessments *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, assessments *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{logger: logger, assessments: assessments}
}

// Submit maneja POST /assessment. Es idempotente: reenviar con una
// evaluacion existente devuelve los valores almacenados sin cambios.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		Left  *int `json:"left" binding:"required"`
		Right *int `json:"right" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "left and right scores are required"})
		return
	}

	assessment, created, err := h.assessments.Submit(c.Request.Context(), claims.UserID, *req.Left, *req.Right)
	if errors.Is(err, service.ErrInvalidAssessmentScores) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scores must be non-negative"})
		return
	}
	if err != nil {
		h.logger.Error("assessment submit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save assessment"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"left_score":    assessment.LeftScore,
		"right_score":   assessment.RightScore,
		"dominant_side": assessment.DominantSide,
		"created":       created,
	})
}

// Status maneja GET /assessment/status.
func (h *AssessmentHandler) Status(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	assessment, err := h.assessments.Status(c.Request.Context(), claims.UserID)
	if errors.Is(err, service.ErrAssessmentNotFound) {
		c.JSON(http.StatusOK, gin.H{"exists": false})
		return
	}
	if err != nil {
		h.logger.Error("assessment status failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exists":        true,
		"left_score":    assessment.LeftScore,
		"right_score":   assessment.RightScore,
		"dominant_side": assessment.DominantSide,
		"created_at":    assessment.CreatedAt,
	})
}
