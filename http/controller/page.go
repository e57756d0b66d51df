package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page routes exist so the access gate can classify and guard navigation;
// rendering belongs to the frontend, which consumes the API. Each handler
// answers with a minimal page descriptor.

func (ctrl *Controller) PageHandler(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": name})
	}
}

func (ctrl *Controller) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
