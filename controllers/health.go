package controllers

import (
	dbpkg "brazyl/db"

	"github.com/gin-gonic/gin"
)

// GET /health
func Health(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil || db.DB().Ping() != nil {
		c.JSON(503, gin.H{"status": "degraded", "database": "down"})
		return
	}
	c.JSON(200, gin.H{"status": "ok"})
}
