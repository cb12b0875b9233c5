package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"amerportal/config"
	"amerportal/models"
	"amerportal/utils"
)

// userData is the allow-list of fields an admin may set on an account.
// Presence is deliberately absent: isOnline only changes through login and
// logout.
type userData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

type createUserInput struct {
	UserData  userData    `json:"userData"`
	AdminUser models.User `json:"adminUser"`
}

type updateUserInput struct {
	UserData  userData    `json:"userData"`
	AdminUser models.User `json:"adminUser"`
}

type deleteUserInput struct {
	AdminUser models.User `json:"adminUser"`
}

func CreateUser(c *gin.Context) {
	var input createUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	user := models.User{
		ID:       utils.NewUserID(),
		Email:    input.UserData.Email,
		Password: input.UserData.Password,
		Role:     input.UserData.Role,
		Username: input.UserData.Username,
		IsOnline: false,
	}

	db := config.DB.Load()
	db.Users = append(db.Users, user)
	if err := config.DB.Save(db); err != nil {
		log.Printf("Failed to persist new user: %v", err)
	}

	utils.AddLog(fmt.Sprintf("Admin %s created new user: %s.", input.AdminUser.Username, user.Username), &input.AdminUser)
	c.JSON(http.StatusCreated, user)
}

func UpdateUser(c *gin.Context) {
	id := c.Param("id")
	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	db := config.DB.Load()
	for i := range db.Users {
		if db.Users[i].ID != id {
			continue
		}

		if input.UserData.Email != "" {
			db.Users[i].Email = input.UserData.Email
		}
		if input.UserData.Password != "" {
			db.Users[i].Password = input.UserData.Password
		}
		if input.UserData.Role != "" {
			db.Users[i].Role = input.UserData.Role
		}
		if input.UserData.Username != "" {
			db.Users[i].Username = input.UserData.Username
		}
		updated := db.Users[i]

		if err := config.DB.Save(db); err != nil {
			log.Printf("Failed to persist user update: %v", err)
		}
		utils.AddLog(fmt.Sprintf("Admin %s updated user: %s.", input.AdminUser.Username, updated.Username), &input.AdminUser)
		c.JSON(http.StatusOK, updated)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
}

func DeleteUser(c *gin.Context) {
	id := c.Param("id")
	var input deleteUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	db := config.DB.Load()
	for i := range db.Users {
		if db.Users[i].ID != id {
			continue
		}

		if db.Users[i].ID == input.AdminUser.ID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admins cannot delete their own account."})
			return
		}

		removed := db.Users[i]
		db.Users = append(db.Users[:i], db.Users[i+1:]...)
		if err := config.DB.Save(db); err != nil {
			log.Printf("Failed to persist user removal: %v", err)
		}

		utils.AddLog(fmt.Sprintf("Admin %s deleted user: %s.", input.AdminUser.Username, removed.Username), &input.AdminUser)
		c.JSON(http.StatusOK, gin.H{"message": "User deleted."})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
}
