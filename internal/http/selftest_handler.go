package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brain-tutor/internal/domain"
	"brain-tutor/internal/service"
)

// SelfTestHandler expone el arnes de diagnostico de la tabla de politicas.
// No forma parte del camino de produccion: corre solo el camino
// determinista (fallback) y sirve como regresion reproducible.
type SelfTestHandler struct {
	logger *zap.Logger
}

func NewSelfTestHandler(logger *zap.Logger) *SelfTestHandler {
	return &SelfTestHandler{logger: logger}
}

// Run maneja GET /selftest. Sin run=true lista los escenarios; con run=true
// ejecuta la bateria, opcionalmente filtrada por dominance.
func (h *SelfTestHandler) Run(c *gin.Context) {
	if c.Query("run") != "true" {
		scenarios := service.SelfTestScenarios()
		c.JSON(http.StatusOK, gin.H{
			"total_scenarios": len(scenarios),
			"scenarios":       scenarios,
		})
		return
	}

	dominance := domain.DominanceType(c.Query("dominance"))
	if dominance != "" && !dominance.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dominance must be left, right or balanced"})
		return
	}

	results := service.RunSelfTest(dominance)
	passed := 0
	for _, r := range results {
		if r.Analysis.Passed {
			passed++
		}
	}

	passRate := 0
	if len(results) > 0 {
		passRate = passed * 100 / len(results)
	}

	h.logger.Info("selftest completed",
		zap.Int("total", len(results)),
		zap.Int("passed", passed),
		zap.Int("pass_rate", passRate),
	)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total":     len(results),
			"passed":    passed,
			"failed":    len(results) - passed,
			"pass_rate": passRate,
		},
		"results": results,
	})
}
