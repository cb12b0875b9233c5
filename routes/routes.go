package routes

import (
	"amerportal/controllers"

	"github.com/gin-gonic/gin"
)

func InitializeRoutes(router *gin.Engine) {
	router.GET("/health", controllers.Health)
	router.GET("/data", controllers.GetData)
	router.GET("/admin/data", controllers.GetAdminData)

	router.POST("/login", controllers.Login)
	router.POST("/logout", controllers.Logout)

	router.POST("/requests", controllers.CreateRequest)
	router.PUT("/requests/:id/status", controllers.UpdateRequestStatus)
	router.DELETE("/requests/:id", controllers.DeleteRequest)

	router.POST("/users", controllers.CreateUser)
	router.PUT("/users/:id", controllers.UpdateUser)
	router.DELETE("/users/:id", controllers.DeleteUser)

	router.Static("/public", "./public")

	// Any unmatched path serves the entry page.
	router.NoRoute(func(c *gin.Context) {
		c.File("./public/login.html")
	})
}
