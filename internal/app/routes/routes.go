package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edaguler/scholarhub/internal/app/controllers"
	"github.com/edaguler/scholarhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	opportunityController *controllers.OpportunityController,
	applicationController *controllers.ApplicationController,
	profileController *controllers.ProfileController,
	statController *controllers.StatController,
	contactController *controllers.ContactController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Auth routes. Only the identity endpoint needs a token.
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.GET("/user", authMiddleware.JWTAuth(), authController.GetUser)
	}

	// Opportunity routes
	opportunities := v1.Group("/opportunities")
	{
		opportunities.GET("", opportunityController.List)
		opportunities.GET("/:id", opportunityController.GetByID)
		opportunities.POST("", opportunityController.Create)
		opportunities.PUT("/:id", opportunityController.Update)
		opportunities.DELETE("/:id", opportunityController.Delete)
	}

	// Application routes
	applications := v1.Group("/applications")
	{
		applications.GET("", applicationController.List)
		applications.POST("", applicationController.Create)
		applications.PUT("/:id", applicationController.UpdateStatus)
	}

	// Profile routes
	profiles := v1.Group("/profiles")
	{
		profiles.GET("/student/:userId", profileController.GetStudentProfile)
		profiles.PUT("/student/:userId", profileController.UpdateStudentProfile)
		profiles.GET("/teacher/:userId", profileController.GetTeacherProfile)
		profiles.PUT("/teacher/:userId", profileController.UpdateTeacherProfile)
	}

	// Success stats
	v1.GET("/stats", statController.List)

	// Contact form
	contact := v1.Group("/contact")
	{
		contact.POST("", contactController.Submit)
		contact.GET("", contactController.List)
	}
}
