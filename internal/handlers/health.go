package handlers

import (
	"github.com/dimerryy/careplatform/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports the status of the service and its database.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	components := gin.H{"database": dbStatus}
	var userCount int64
	if err := models.GetDB().Model(&models.User{}).Count(&userCount).Error; err != nil {
		components["users"] = "error: " + err.Error()
		overall = "unhealthy"
	} else {
		components["users"] = userCount
	}

	c.JSON(200, gin.H{
		"status":     overall,
		"service":    "careplatform",
		"components": components,
	})
}
