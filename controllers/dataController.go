package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"amerportal/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Server is running", "timestamp": time.Now().UTC()})
}

// GetData returns the public subset of the document used by the counter and
// reception pages.
func GetData(c *gin.Context) {
	db := config.DB.Load()
	c.JSON(http.StatusOK, gin.H{"users": db.Users, "requests": db.Requests})
}

// GetAdminData returns the full document, including the activity feed and the
// daily log.
func GetAdminData(c *gin.Context) {
	c.JSON(http.StatusOK, config.DB.Load())
}
