package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GET /api/plans
// Dados de referência servidos do registry em memória, não do banco.
func GetPlans(c *gin.Context) {
	RespondSuccess(c, gin.H{"plans": planRegistry.All()})
}

// GET /api/plans/:type
func GetPlanByType(c *gin.Context) {
	planType := strings.ToUpper(strings.TrimSpace(c.Param("type")))

	plan, err := planRegistry.GetByType(planType)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, gin.H{"plan": plan, "quota": plan.Quota()})
}
