package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"amerportal/config"
	"amerportal/utils"
)

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutInput struct {
	UserID string `json:"userId"`
}

// Login matches email and password against the user directory and flips the
// matched account online. Credentials are compared as stored; the record is
// returned as-is, password included, and the browser-side gate decides what
// to keep.
func Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		return
	}

	db := config.DB.Load()
	for i := range db.Users {
		if db.Users[i].Email != input.Email || db.Users[i].Password != input.Password {
			continue
		}
		db.Users[i].IsOnline = true
		user := db.Users[i]
		if err := config.DB.Save(db); err != nil {
			log.Printf("Failed to persist login: %v", err)
		}
		utils.AddLog(fmt.Sprintf("User %s logged in.", user.Username), &user)
		c.JSON(http.StatusOK, user)
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
}

func Logout(c *gin.Context) {
	var input logoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	db := config.DB.Load()
	for i := range db.Users {
		if db.Users[i].ID != input.UserID {
			continue
		}
		db.Users[i].IsOnline = false
		user := db.Users[i]
		if err := config.DB.Save(db); err != nil {
			log.Printf("Failed to persist logout: %v", err)
		}
		utils.AddLog(fmt.Sprintf("User %s logged out.", user.Username), &user)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
}
